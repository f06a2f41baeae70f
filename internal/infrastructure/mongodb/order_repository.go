package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

type orderDocument struct {
	ID           primitive.ObjectID   `bson:"_id"`
	CustomerID   string               `bson:"customerId"`
	CustomerName string               `bson:"customerName"`
	Status       string               `bson:"status"`
	TotalAmount  primitive.Decimal128 `bson:"totalAmount"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func newOrderDocument(o *entity.Order) (*orderDocument, error) {
	oid, err := objectID(o.ID)
	if err != nil {
		return nil, err
	}
	total, err := toDecimal128(o.TotalAmount)
	if err != nil {
		return nil, err
	}
	return &orderDocument{
		ID:           oid,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		TotalAmount:  total,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}, nil
}

func (d *orderDocument) toEntity() (*entity.Order, error) {
	total, err := fromDecimal128(d.TotalAmount)
	if err != nil {
		return nil, err
	}
	return &entity.Order{
		ID:           d.ID.Hex(),
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Status:       d.Status,
		TotalAmount:  total,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

// OrderRepo implementación del puerto OrderRepository sobre MongoDB.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(OrderCollection)}
}

// Find lista pedidos que cumplen crit (incluye la restricción de dueño si la hay).
func (r *OrderRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Order, error) {
	cur, err := r.coll.Find(ctx, toBSON(crit), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	list := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		o, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

// FindByID obtiene un pedido por ID.
func (r *OrderRepo) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc orderDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return doc.toEntity()
}

// Insert persiste un pedido nuevo.
func (r *OrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	doc, err := newOrderDocument(order)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update reemplaza el documento del pedido.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	doc, err := newOrderDocument(order)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.CandyRepository = (*CandyRepo)(nil)

type candyDocument struct {
	ID                primitive.ObjectID   `bson:"_id"`
	Name              string               `bson:"name"`
	Description       string               `bson:"description"`
	ShippingContainer string               `bson:"shipping_container"`
	PricePerUnit      primitive.Decimal128 `bson:"price_per_unit"`
	StockQuantity     int                  `bson:"stock_quantity"`
	SupplierName      string               `bson:"supplier_name"`
	DateAdded         string               `bson:"date_added"`
	CreatedBy         string               `bson:"createdBy,omitempty"`
}

func newCandyDocument(c *entity.Candy) (*candyDocument, error) {
	oid, err := objectID(c.ID)
	if err != nil {
		return nil, err
	}
	price, err := toDecimal128(c.PricePerUnit)
	if err != nil {
		return nil, err
	}
	return &candyDocument{
		ID:                oid,
		Name:              c.Name,
		Description:       c.Description,
		ShippingContainer: c.ShippingContainer,
		PricePerUnit:      price,
		StockQuantity:     c.StockQuantity,
		SupplierName:      c.SupplierName,
		DateAdded:         c.DateAdded,
		CreatedBy:         c.CreatedBy,
	}, nil
}

func (d *candyDocument) toEntity() (*entity.Candy, error) {
	price, err := fromDecimal128(d.PricePerUnit)
	if err != nil {
		return nil, err
	}
	return &entity.Candy{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Description:       d.Description,
		ShippingContainer: d.ShippingContainer,
		PricePerUnit:      price,
		StockQuantity:     d.StockQuantity,
		SupplierName:      d.SupplierName,
		DateAdded:         d.DateAdded,
		CreatedBy:         d.CreatedBy,
	}, nil
}

// CandyRepo implementación del puerto CandyRepository sobre MongoDB.
type CandyRepo struct {
	coll *mongo.Collection
}

// NewCandyRepository construye el adaptador de persistencia para dulces.
func NewCandyRepository(db *mongo.Database) *CandyRepo {
	return &CandyRepo{coll: db.Collection(CandyCollection)}
}

// Find lista dulces que cumplen crit, ordenados por _id (orden de creación).
func (r *CandyRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Candy, error) {
	cur, err := r.coll.Find(ctx, toBSON(crit), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find candy: %w", err)
	}
	var docs []candyDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode candy: %w", err)
	}
	list := make([]*entity.Candy, 0, len(docs))
	for i := range docs {
		c, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

// FindByID obtiene un dulce por ID.
func (r *CandyRepo) FindByID(ctx context.Context, id string) (*entity.Candy, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc candyDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candy: %w", err)
	}
	return doc.toEntity()
}

// Insert persiste un dulce nuevo.
func (r *CandyRepo) Insert(ctx context.Context, candy *entity.Candy) error {
	doc, err := newCandyDocument(candy)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert candy: %w", err)
	}
	return nil
}

// Update reemplaza el documento completo (el merge parcial ocurre en el caso de uso).
func (r *CandyRepo) Update(ctx context.Context, candy *entity.Candy) error {
	doc, err := newCandyDocument(candy)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("update candy: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un dulce por ID.
func (r *CandyRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete candy: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

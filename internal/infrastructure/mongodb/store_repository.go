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

var _ repository.StoreRepository = (*StoreRepo)(nil)

type storeDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Street         string             `bson:"street"`
	City           string             `bson:"city"`
	State          string             `bson:"state"`
	ZipCode        string             `bson:"zip_code"`
	PhoneNumber    string             `bson:"phone_number"`
	Email          string             `bson:"email"`
	OwnerID        string             `bson:"owner_id"`
	OperatingHours string             `bson:"operating_hours"`
	Website        string             `bson:"website"`
}

func newStoreDocument(s *entity.Store) (*storeDocument, error) {
	oid, err := objectID(s.ID)
	if err != nil {
		return nil, err
	}
	return &storeDocument{
		ID:             oid,
		Name:           s.Name,
		Street:         s.Street,
		City:           s.City,
		State:          s.State,
		ZipCode:        s.ZipCode,
		PhoneNumber:    s.PhoneNumber,
		Email:          s.Email,
		OwnerID:        s.OwnerID,
		OperatingHours: s.OperatingHours,
		Website:        s.Website,
	}, nil
}

func (d *storeDocument) toEntity() *entity.Store {
	return &entity.Store{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Street:         d.Street,
		City:           d.City,
		State:          d.State,
		ZipCode:        d.ZipCode,
		PhoneNumber:    d.PhoneNumber,
		Email:          d.Email,
		OwnerID:        d.OwnerID,
		OperatingHours: d.OperatingHours,
		Website:        d.Website,
	}
}

// StoreRepo implementación del puerto StoreRepository sobre MongoDB.
type StoreRepo struct {
	coll *mongo.Collection
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(db *mongo.Database) *StoreRepo {
	return &StoreRepo{coll: db.Collection(StoreCollection)}
}

// Find lista tiendas que cumplen crit.
func (r *StoreRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Store, error) {
	cur, err := r.coll.Find(ctx, toBSON(crit), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	var docs []storeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}
	list := make([]*entity.Store, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// FindByID obtiene una tienda por ID.
func (r *StoreRepo) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc storeDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return doc.toEntity(), nil
}

// Insert persiste una tienda nueva.
func (r *StoreRepo) Insert(ctx context.Context, store *entity.Store) error {
	doc, err := newStoreDocument(store)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// Update reemplaza el documento de la tienda.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	doc, err := newStoreDocument(store)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Username      string             `bson:"username"`
	Email         string             `bson:"email"`
	PreferredName string             `bson:"preferred_name"`
	PhoneNumber   string             `bson:"phone_number"`
	PasswordHash  string             `bson:"password_hash"`
	Role          string             `bson:"role"`
	DateCreated   time.Time          `bson:"date_created"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:            d.ID.Hex(),
		Username:      d.Username,
		Email:         d.Email,
		PreferredName: d.PreferredName,
		PhoneNumber:   d.PhoneNumber,
		PasswordHash:  d.PasswordHash,
		Role:          d.Role,
		DateCreated:   d.DateCreated,
	}
}

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(UserCollection)}
}

// Create persiste un nuevo usuario. Depende del índice único en email (EnsureIndexes).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	oid, err := objectID(user.ID)
	if err != nil {
		return err
	}
	doc := userDocument{
		ID:            oid,
		Username:      user.Username,
		Email:         user.Email,
		PreferredName: user.PreferredName,
		PhoneNumber:   user.PhoneNumber,
		PasswordHash:  user.PasswordHash,
		Role:          user.Role,
		DateCreated:   user.DateCreated,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) findOne(ctx context.Context, q bson.M) (*entity.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, q).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return doc.toEntity(), nil
}

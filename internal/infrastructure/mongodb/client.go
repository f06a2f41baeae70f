package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/candy-store-api/pkg/config"
)

// Nombres de colecciones.
const (
	CandyCollection = "candy"
	OrderCollection = "orders"
	StoreCollection = "stores"
	UserCollection  = "users"
)

// Connect crea el cliente MongoDB (una vez por proceso) y verifica la conexión con Ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout()).
		SetConnectTimeout(cfg.Timeout()).
		SetMaxPoolSize(25).
		SetMinPoolSize(2)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// Open conecta, crea los índices y retorna la base cfg.Database junto con la
// función que desconecta el cliente. Si falla la creación de índices el cliente
// se desconecta antes de retornar el error.
func Open(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(context.Context) error, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.Database)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return db, client.Disconnect, nil
}

// EnsureIndexes crea los índices requeridos (idempotente).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}
	_, err = db.Collection(OrderCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("índice orders.customerId: %w", err)
	}
	return nil
}

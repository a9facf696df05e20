package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mosql_gen/internal/config"
	"mosql_gen/internal/domain"
	"mosql_gen/internal/logger"
)

// MongoSource строит модель по живой базе: коллекции становятся списками,
// поля выводятся по выборке документов
type MongoSource struct {
	uri        string
	database   string
	sampleSize int64
	logger     *logger.Log
}

func NewMongoSource(uri string, sampleSize int, l *logger.Log) (*MongoSource, error) {
	database, err := config.DatabaseFromURI(uri)
	if err != nil {
		return nil, err
	}
	if sampleSize <= 0 {
		sampleSize = 100
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &MongoSource{uri: uri, database: database, sampleSize: int64(sampleSize), logger: l}, nil
}

func (m *MongoSource) Load(ctx context.Context) (*domain.SchemaModel, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			m.logger.Errorf("mongo disconnect failed: %v", err)
		}
	}()

	db := client.Database(m.database)
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	slices.Sort(names)

	result := &domain.SchemaModel{Name: m.database}
	for _, name := range names {
		if strings.HasPrefix(name, "system.") {
			continue
		}
		fields, err := m.sampleCollection(ctx, db.Collection(name))
		if err != nil {
			return nil, fmt.Errorf("sample collection %s: %w", name, err)
		}
		m.logger.Debugf("collection %s: %d fields inferred", name, len(fields))
		result.Lists = append(result.Lists, domain.ListDescriptor{Key: name, Table: name, Fields: fields})
	}
	return result, nil
}

func (m *MongoSource) sampleCollection(ctx context.Context, coll *mongo.Collection) ([]domain.FieldDescriptor, error) {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetLimit(m.sampleSize))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	fields := newFieldSet()
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		fields.Observe(doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return fields.Fields(), nil
}

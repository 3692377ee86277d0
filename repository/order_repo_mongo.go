package repository

import (
	"context"
	"fmt"

	"aerozone/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OrderCollection  = "excelData"
	IndentCollection = "Indent_Quantity"
)

type MongoOrderRepo struct {
	DB *mongo.Database
}

func NewMongoOrderRepo(db *mongo.Database) *MongoOrderRepo {
	return &MongoOrderRepo{DB: db}
}

// InsertMany writes all lines in a single call and fills in their IDs.
func (r *MongoOrderRepo) InsertMany(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	docs := make([]interface{}, len(lines))
	for i := range lines {
		docs[i] = lines[i]
	}

	res, err := r.DB.Collection(OrderCollection).InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert order lines: %w", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(lines) {
			lines[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *MongoOrderRepo) FindAll(ctx context.Context) ([]models.OrderLine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.DB.Collection(OrderCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find order lines: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.OrderLine{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode order lines: %w", err)
	}
	return out, nil
}

type MongoIndentRepo struct {
	DB *mongo.Database
}

func NewMongoIndentRepo(db *mongo.Database) *MongoIndentRepo {
	return &MongoIndentRepo{DB: db}
}

func (r *MongoIndentRepo) FindAll(ctx context.Context) ([]models.IndentLine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.DB.Collection(IndentCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find indent lines: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.IndentLine{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode indent lines: %w", err)
	}
	return out, nil
}

// EnsureMongoIndexes creates the lookup indexes used by the join views.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]string{
		OrderCollection:  {"UniqueCode", "ItemCode", "ProjectCode"},
		IndentCollection: {"UNIQUE_CODE", "ITEM_CODE"},
	}
	for coll, keys := range indexes {
		idx := make([]mongo.IndexModel, 0, len(keys))
		for _, k := range keys {
			idx = append(idx, mongo.IndexModel{Keys: bson.D{{Key: k, Value: 1}}})
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

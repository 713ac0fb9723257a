package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// MongoStore persists scenes in a MongoDB collection, keyed by name.
// Intended for serve deployments where multiple users share a scene library.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// sceneDoc is the document shape stored in Mongo. The scene payload reuses
// the JSON file format, so files and database documents stay interchangeable.
type sceneDoc struct {
	Name  string     `bson:"_id"`
	Scene scene.File `bson:"scene"`
}

// NewMongoStore connects to MongoDB and returns a store backed by the
// "scenes" collection of the given database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection("scenes"),
	}, nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (*scene.Scene, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var doc sceneDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", name, err)
	}
	return scene.ToScene(doc.Scene)
}

func (s *MongoStore) Save(ctx context.Context, name string, sc *scene.Scene) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	doc := sceneDoc{Name: name, Scene: scene.FromScene(sc)}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": name}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save scene %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode scene name: %w", err)
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("delete scene %s: %w", name, err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)

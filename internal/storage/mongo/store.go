package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/syntrixbase/todos/internal/storage/config"
	"github.com/syntrixbase/todos/internal/storage/types"
	"github.com/syntrixbase/todos/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// todoDocument is the stored shape of a todo. Status is loosely typed because
// existing collections hold it both as a string and as a boolean.
type todoDocument struct {
	ID       primitive.ObjectID `bson:"_id"`
	Body     string             `bson:"body,omitempty"`
	Status   interface{}        `bson:"status,omitempty"`
	Owner    string             `bson:"owner"`
	Category string             `bson:"category"`
}

func (d *todoDocument) toModel() *model.Todo {
	t := &model.Todo{
		ID:       d.ID.Hex(),
		Body:     d.Body,
		Owner:    d.Owner,
		Category: d.Category,
	}
	if d.Status != nil {
		t.Status = fmt.Sprint(d.Status)
	}
	return t
}

type categoryGroupDocument struct {
	Category string         `bson:"_id"`
	Count    int            `bson:"count"`
	Todos    []todoDocument `bson:"todos"`
}

type todoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ types.TodoStore = (*todoStore)(nil)

// NewStore connects to MongoDB and returns a store over the configured collection.
func NewStore(ctx context.Context, cfg config.MongoConfig) (types.TodoStore, error) {
	p, err := NewProvider(ctx, cfg.URI, cfg.DatabaseName, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	return newTodoStore(p.Client(), p.Database(), cfg.Collection), nil
}

func newTodoStore(client *mongo.Client, db *mongo.Database, collection string) *todoStore {
	return &todoStore{
		client: client,
		coll:   db.Collection(collection),
	}
}

func (s *todoStore) Get(ctx context.Context, id string) (*model.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// No stored document can carry an id that is not an ObjectID.
		return nil, model.ErrNotFound
	}

	var doc todoDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, model.WrapError(err)
	}

	return doc.toModel(), nil
}

func (s *todoStore) Find(ctx context.Context, filters model.Filters, sort model.Sort) ([]*model.Todo, error) {
	filter, err := makeFilterBSON(filters)
	if err != nil {
		return nil, err
	}
	findOptions := options.Find().SetSort(makeSortBSON(sort))

	cursor, err := s.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, model.WrapError(err)
	}

	todos := make([]*model.Todo, 0, len(docs))
	for i := range docs {
		todos = append(todos, docs[i].toModel())
	}
	return todos, nil
}

func (s *todoStore) GroupByCategory(ctx context.Context, sort model.Sort) ([]*model.CategoryGroup, error) {
	groupSort := bson.D{{Key: "_id", Value: direction(sort)}}
	if sort.Field == "count" {
		groupSort = bson.D{{Key: "count", Value: direction(sort)}, {Key: "_id", Value: 1}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: model.FieldOwner, Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + model.FieldCategory},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "todos", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
		}}},
		{{Key: "$sort", Value: groupSort}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	var docs []categoryGroupDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, model.WrapError(err)
	}

	groups := make([]*model.CategoryGroup, 0, len(docs))
	for _, d := range docs {
		g := &model.CategoryGroup{
			Category: d.Category,
			Count:    d.Count,
			Todos:    make([]*model.Todo, 0, len(d.Todos)),
		}
		for i := range d.Todos {
			g.Todos = append(g.Todos, d.Todos[i].toModel())
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *todoStore) Close(ctx context.Context) error {
	if s.client != nil {
		return s.client.Disconnect(ctx)
	}
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is the collection boards are stored in.
const MongoCollection = "boards"

// mongoBoard is the stored document. The payload is kept as a JSON string
// so it round-trips byte for byte.
type mongoBoard struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
	Payload   string    `bson:"payload,omitempty"`
}

func toMongo(r Record) mongoBoard {
	return mongoBoard{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Payload:   string(r.Payload),
	}
}

func (b mongoBoard) meta() Meta {
	return Meta{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt.UTC(), UpdatedAt: b.UpdatedAt.UTC()}
}

func (b mongoBoard) record() Record {
	return Record{Meta: b.meta(), Payload: json.RawMessage(b.Payload)}
}

type mongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

// NewMongoStore stores boards in the boards collection of db. Close leaves
// a caller-provided client connected.
func NewMongoStore(client *mongo.Client, db string) Store {
	return newRecordStore("mongo", newMongoBackend(client, db, false))
}

func newMongoBackend(client *mongo.Client, db string, owned bool) *mongoBackend {
	return &mongoBackend{
		client: client,
		coll:   client.Database(db).Collection(MongoCollection),
		owned:  owned,
	}
}

func (m *mongoBackend) load(ctx context.Context, id string) (Record, error) {
	var doc mongoBoard
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, NotFound(id)
	}
	if err != nil {
		return Record{}, err
	}
	return doc.record(), nil
}

func (m *mongoBackend) put(ctx context.Context, r Record) error {
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": r.ID}, toMongo(r), options.Replace().SetUpsert(true))
	return err
}

func (m *mongoBackend) remove(ctx context.Context, id string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return NotFound(id)
	}
	return nil
}

func (m *mongoBackend) list(ctx context.Context) ([]Meta, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetProjection(bson.M{"payload": 0})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []mongoBoard
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	metas := make([]Meta, len(docs))
	for i, d := range docs {
		metas[i] = d.meta()
	}
	return metas, nil
}

func (m *mongoBackend) close() error {
	if !m.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

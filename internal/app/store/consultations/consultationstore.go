// internal/app/store/consultations/consultationstore.go
package consultationstore

import (
	"context"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the Mongo collection holding consultations.
const Collection = "consultations"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every consultation in source order.
func (s *Store) List(ctx context.Context) ([]models.Consultation, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Consultation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns mongo.ErrNoDocuments when no consultation has the id.
func (s *Store) GetByID(ctx context.Context, id int) (models.Consultation, error) {
	var c models.Consultation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Consultation{}, err
	}
	return c, nil
}

// Count returns the number of stored consultations.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// ReplaceAll upserts every record and removes documents whose id is not in
// recs, leaving the collection equal to recs.
func (s *Store) ReplaceAll(ctx context.Context, recs []models.Consultation) error {
	ids := make([]int, 0, len(recs))
	for _, r := range recs {
		_, err := s.c.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
		ids = append(ids, r.ID)
	}
	_, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	return err
}

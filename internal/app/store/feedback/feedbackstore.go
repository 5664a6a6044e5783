// internal/app/store/feedback/feedbackstore.go
package feedbackstore

import (
	"context"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the Mongo collection holding feedback items.
const Collection = "feedback"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every feedback item in source order.
func (s *Store) List(ctx context.Context) ([]models.Feedback, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Feedback{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id int) (models.Feedback, error) {
	var f models.Feedback
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.Feedback{}, err
	}
	return f, nil
}

// CountByStatus returns how many feedback items carry status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": status})
}

// ReplaceAll leaves the collection equal to recs.
func (s *Store) ReplaceAll(ctx context.Context, recs []models.Feedback) error {
	ids := make([]int, 0, len(recs))
	for _, r := range recs {
		if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, options.Replace().SetUpsert(true)); err != nil {
			return err
		}
		ids = append(ids, r.ID)
	}
	_, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	return err
}

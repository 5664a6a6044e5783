// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the Mongo collection holding groups.
const Collection = "groups"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every group in source order.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Group{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Options returns the selectable group summaries without loading members.
func (s *Store) Options(ctx context.Context) ([]models.GroupOption, error) {
	proj := bson.M{"_id": 1, "name": 1, "member_count": 1}
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}}).
		SetProjection(proj))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Group
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]models.GroupOption, 0, len(rows))
	for _, g := range rows {
		out = append(out, g.Option())
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// ReplaceAll leaves the collection equal to recs.
func (s *Store) ReplaceAll(ctx context.Context, recs []models.Group) error {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, options.Replace().SetUpsert(true)); err != nil {
			return err
		}
		ids = append(ids, r.ID)
	}
	_, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ids}})
	return err
}

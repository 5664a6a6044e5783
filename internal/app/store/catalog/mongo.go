// internal/app/store/catalog/mongo.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	consultationstore "github.com/dalemusser/consulthub/internal/app/store/consultations"
	feedbackstore "github.com/dalemusser/consulthub/internal/app/store/feedback"
	groupstore "github.com/dalemusser/consulthub/internal/app/store/groups"
	"github.com/dalemusser/consulthub/internal/app/store/seed"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo serves the catalog from three MongoDB collections.
type Mongo struct {
	db            *mongo.Database
	consultations *consultationstore.Store
	feedback      *feedbackstore.Store
	groups        *groupstore.Store
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		db:            db,
		consultations: consultationstore.New(db),
		feedback:      feedbackstore.New(db),
		groups:        groupstore.New(db),
	}
}

// Seed makes the three collections equal to c. Safe to run on every start.
func (m *Mongo) Seed(ctx context.Context, c seed.Catalog) error {
	if err := m.consultations.ReplaceAll(ctx, c.Consultations); err != nil {
		return fmt.Errorf("seed consultations: %w", err)
	}
	if err := m.feedback.ReplaceAll(ctx, c.Feedback); err != nil {
		return fmt.Errorf("seed feedback: %w", err)
	}
	if err := m.groups.ReplaceAll(ctx, c.Groups); err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	return nil
}

func (m *Mongo) Consultations(ctx context.Context) ([]models.Consultation, error) {
	out, err := m.consultations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return out, nil
}

func (m *Mongo) Consultation(ctx context.Context, id int) (models.Consultation, error) {
	c, err := m.consultations.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Consultation{}, notFound("consultation", id)
	}
	return c, err
}

func (m *Mongo) Feedback(ctx context.Context) ([]models.Feedback, error) {
	out, err := m.feedback.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return out, nil
}

func (m *Mongo) FeedbackItem(ctx context.Context, id int) (models.Feedback, error) {
	f, err := m.feedback.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Feedback{}, notFound("feedback", id)
	}
	return f, err
}

func (m *Mongo) Groups(ctx context.Context) ([]models.Group, error) {
	out, err := m.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return out, nil
}

func (m *Mongo) Group(ctx context.Context, id string) (models.Group, error) {
	g, err := m.groups.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Group{}, notFound("group", id)
	}
	return g, err
}

func (m *Mongo) GroupOptions(ctx context.Context) ([]models.GroupOption, error) {
	out, err := m.groups.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("list group options: %w", err)
	}
	return out, nil
}

// Ping checks the server is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, nil)
}

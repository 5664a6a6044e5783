package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/store/seed"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Catalog returns a private copy of the embedded seed catalog.
func Catalog(t *testing.T) seed.Catalog {
	t.Helper()
	c, err := seed.Load()
	if err != nil {
		t.Fatalf("load seed catalog: %v", err)
	}
	return c
}

// InsertConsultation writes c straight into the consultations collection.
func (f *Fixtures) InsertConsultation(ctx context.Context, c models.Consultation) models.Consultation {
	f.t.Helper()
	if _, err := f.db.Collection("consultations").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to insert consultation: %v", err)
	}
	return c
}

// InsertFeedback writes fb straight into the feedback collection.
func (f *Fixtures) InsertFeedback(ctx context.Context, fb models.Feedback) models.Feedback {
	f.t.Helper()
	if _, err := f.db.Collection("feedback").InsertOne(ctx, fb); err != nil {
		f.t.Fatalf("failed to insert feedback: %v", err)
	}
	return fb
}

// InsertGroup writes g straight into the groups collection.
func (f *Fixtures) InsertGroup(ctx context.Context, g models.Group) models.Group {
	f.t.Helper()
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to insert group: %v", err)
	}
	return g
}

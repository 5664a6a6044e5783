// internal/app/store/catalog/catalog.go
//
// Package catalog is the read-only repository in front of the reference
// records. Handlers depend on Reader; bootstrap picks the backend.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/consulthub/internal/domain/models"
)

// ErrNotFound is returned by the fetch-by-id methods for unknown identifiers.
var ErrNotFound = errors.New("catalog: record not found")

// Reader exposes the reference records. Lists are returned in source order
// and belong to the caller.
type Reader interface {
	Consultations(ctx context.Context) ([]models.Consultation, error)
	Consultation(ctx context.Context, id int) (models.Consultation, error)

	Feedback(ctx context.Context) ([]models.Feedback, error)
	FeedbackItem(ctx context.Context, id int) (models.Feedback, error)

	Groups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, id string) (models.Group, error)
	GroupOptions(ctx context.Context) ([]models.GroupOption, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Backend names accepted by the store_backend config key.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// ResolveGroupName returns the display name for a consultation's group label.
// Consultations reference groups by name; ok is false when no group matches.
func ResolveGroupName(groups []models.Group, name string) (models.Group, bool) {
	for _, g := range groups {
		if g.Name == name {
			return g, true
		}
	}
	return models.Group{}, false
}

func notFound(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, ErrNotFound)
}

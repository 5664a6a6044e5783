// internal/app/store/catalog/memory.go
package catalog

import (
	"context"

	"github.com/dalemusser/consulthub/internal/app/store/seed"
	"github.com/dalemusser/consulthub/internal/domain/models"
)

// Memory serves the catalog from process memory. It never mutates its
// records and hands out copies, so it is safe for concurrent readers.
type Memory struct {
	cat seed.Catalog
}

// NewMemory wraps c. The caller must not modify c afterwards.
func NewMemory(c seed.Catalog) *Memory {
	return &Memory{cat: c}
}

// NewSeeded returns a Memory over the embedded seed catalog.
func NewSeeded() (*Memory, error) {
	c, err := seed.Load()
	if err != nil {
		return nil, err
	}
	return NewMemory(c), nil
}

func (m *Memory) Consultations(ctx context.Context) ([]models.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Consultation(nil), m.cat.Consultations...), nil
}

func (m *Memory) Consultation(ctx context.Context, id int) (models.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return models.Consultation{}, err
	}
	for _, c := range m.cat.Consultations {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Consultation{}, notFound("consultation", id)
}

func (m *Memory) Feedback(ctx context.Context) ([]models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Feedback(nil), m.cat.Feedback...), nil
}

func (m *Memory) FeedbackItem(ctx context.Context, id int) (models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return models.Feedback{}, err
	}
	for _, f := range m.cat.Feedback {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Feedback{}, notFound("feedback", id)
}

func (m *Memory) Groups(ctx context.Context) ([]models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return seed.Catalog{Groups: m.cat.Groups}.Clone().Groups, nil
}

func (m *Memory) Group(ctx context.Context, id string) (models.Group, error) {
	if err := ctx.Err(); err != nil {
		return models.Group{}, err
	}
	for _, g := range m.cat.Groups {
		if g.ID == id {
			g.Members = append([]models.Member(nil), g.Members...)
			return g, nil
		}
	}
	return models.Group{}, notFound("group", id)
}

func (m *Memory) GroupOptions(ctx context.Context) ([]models.GroupOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.GroupOption, 0, len(m.cat.Groups))
	for _, g := range m.cat.Groups {
		out = append(out, g.Option())
	}
	return out, nil
}

// Ping always succeeds for the in-memory backend.
func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// internal/app/store/seed/seed.go
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the full set of reference records, each list in source order.
type Catalog struct {
	Consultations []models.Consultation `yaml:"consultations"`
	Feedback      []models.Feedback     `yaml:"feedback"`
	Groups        []models.Group        `yaml:"groups"`
}

var (
	loadOnce sync.Once
	loaded   Catalog
	loadErr  error
)

// Load returns a copy of the embedded catalog. The YAML is parsed once per
// process; callers are free to modify what they get back.
func Load() (Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(catalogYAML)
	})
	if loadErr != nil {
		return Catalog{}, loadErr
	}
	return loaded.Clone(), nil
}

// MustLoad is Load for callers that treat a broken embedded catalog as a
// programming error.
func MustLoad() Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document. Unknown keys are rejected so typos in
// the data file fail loudly. Position is assigned from list order.
func Parse(b []byte) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	for i := range c.Consultations {
		c.Consultations[i].Position = i
	}
	for i := range c.Feedback {
		c.Feedback[i].Position = i
	}
	for i := range c.Groups {
		c.Groups[i].Position = i
	}

	if err := c.validateIDs(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Consultations: append([]models.Consultation(nil), c.Consultations...),
		Feedback:      append([]models.Feedback(nil), c.Feedback...),
		Groups:        make([]models.Group, len(c.Groups)),
	}
	for i, g := range c.Groups {
		g.Members = append([]models.Member(nil), g.Members...)
		out.Groups[i] = g
	}
	return out
}

func (c Catalog) validateIDs() error {
	seenC := make(map[int]struct{}, len(c.Consultations))
	for _, r := range c.Consultations {
		if _, dup := seenC[r.ID]; dup {
			return fmt.Errorf("duplicate consultation id %d", r.ID)
		}
		seenC[r.ID] = struct{}{}
	}
	seenF := make(map[int]struct{}, len(c.Feedback))
	for _, r := range c.Feedback {
		if _, dup := seenF[r.ID]; dup {
			return fmt.Errorf("duplicate feedback id %d", r.ID)
		}
		seenF[r.ID] = struct{}{}
	}
	seenG := make(map[string]struct{}, len(c.Groups))
	for _, g := range c.Groups {
		if g.ID == "" {
			return errors.New("group with empty id")
		}
		if _, dup := seenG[g.ID]; dup {
			return fmt.Errorf("duplicate group id %q", g.ID)
		}
		seenG[g.ID] = struct{}{}
	}
	return nil
}

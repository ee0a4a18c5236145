// Package catalog holds the read-only opportunity seed data.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"gopkg.in/yaml.v3"

	"voluntaura/internal/models"
)

//go:embed seed.yaml
var seed []byte

// ErrUnknownOpportunity is returned when an id is not part of the catalog.
var ErrUnknownOpportunity = errors.New("opportunity not found")

// Catalog is an immutable, ordered collection of opportunities.
type Catalog struct {
	items []models.Opportunity
	byID  map[string]int
}

type seedFile struct {
	Opportunities []models.Opportunity `yaml:"opportunities"`
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Load(seed)
	if err != nil {
		panic(fmt.Sprintf("bundled catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(data)
}

// Load decodes YAML seed data and validates every entry.
func Load(data []byte) (*Catalog, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Opportunities)
}

// New validates opportunities and wraps them in a Catalog. The slice is copied.
func New(opps []models.Opportunity) (*Catalog, error) {
	c := &Catalog{
		items: make([]models.Opportunity, 0, len(opps)),
		byID:  make(map[string]int, len(opps)),
	}
	for _, o := range opps {
		if err := validate(o); err != nil {
			return nil, err
		}
		if _, dup := c.byID[o.ID]; dup {
			return nil, fmt.Errorf("opportunity %s: duplicate id", o.ID)
		}
		c.byID[o.ID] = len(c.items)
		c.items = append(c.items, clone(o))
	}
	return c, nil
}

// All returns every opportunity in seed order.
func (c *Catalog) All() []models.Opportunity {
	out := make([]models.Opportunity, len(c.items))
	for i, o := range c.items {
		out[i] = clone(o)
	}
	return out
}

// Get looks up a single opportunity by id.
func (c *Catalog) Get(id string) (models.Opportunity, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Opportunity{}, fmt.Errorf("%w: %s", ErrUnknownOpportunity, id)
	}
	return clone(c.items[idx]), nil
}

// Len returns the number of opportunities.
func (c *Catalog) Len() int {
	return len(c.items)
}

func validate(o models.Opportunity) error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("opportunity %q: empty id", o.Title)
	}
	if len(o.Causes) == 0 {
		return fmt.Errorf("opportunity %s: causes must not be empty", o.ID)
	}
	for _, cause := range o.Causes {
		if !slice.Contains(models.Causes, cause) {
			return fmt.Errorf("opportunity %s: unknown cause %q", o.ID, cause)
		}
	}
	if o.Distance < 0 {
		return fmt.Errorf("opportunity %s: negative distance %v", o.ID, o.Distance)
	}
	if o.LocationType != models.LocationInPerson && o.LocationType != models.LocationRemote {
		return fmt.Errorf("opportunity %s: unknown location type %q", o.ID, o.LocationType)
	}
	if !slice.Contains(models.TimeCommitments, o.TimeCommitment) {
		return fmt.Errorf("opportunity %s: unknown time commitment %q", o.ID, o.TimeCommitment)
	}
	for _, av := range o.Availability {
		if !slice.Contains(models.Availabilities, av) {
			return fmt.Errorf("opportunity %s: unknown availability %q", o.ID, av)
		}
	}
	return nil
}

func clone(o models.Opportunity) models.Opportunity {
	o.Causes = slices.Clone(o.Causes)
	o.Availability = slices.Clone(o.Availability)
	o.Requirements = slices.Clone(o.Requirements)
	o.Skills = slices.Clone(o.Skills)
	return o
}

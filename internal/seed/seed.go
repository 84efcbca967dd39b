// Package seed supplies the fixed roster the stores are initialized from.
// The embedded dataset is re-created identically on every process start.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
)

//go:embed roster.yaml
var defaultRoster []byte

// Dataset is the parsed seed roster. Collections are listed display-first:
// loading preserves the file order as the rendered order.
type Dataset struct {
	Users         []models.User        `yaml:"users"`
	Profiles      []models.Profile     `yaml:"profiles"`
	Opportunities []models.Opportunity `yaml:"opportunities"`
	Events        []models.Event       `yaml:"events"`
	Applications  []models.Application `yaml:"applications"`
}

// Default parses the embedded roster.
func Default() (*Dataset, error) {
	return parse(defaultRoster)
}

// FromFile parses a roster override from disk.
func FromFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Dataset, error) {
	ds := &Dataset{}
	if err := yaml.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	return ds, nil
}

// validate checks the closed enum fields and id uniqueness before the
// dataset reaches the stores, which trust their input.
func (d *Dataset) validate() error {
	seen := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		if !u.Role.Valid() {
			return fmt.Errorf("user %s: unknown role %q", u.ID, u.Role)
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate user id %s", u.ID)
		}
		seen[u.ID] = true
	}
	for _, o := range d.Opportunities {
		if !o.Type.Valid() {
			return fmt.Errorf("opportunity %s: unknown type %q", o.ID, o.Type)
		}
	}
	for _, a := range d.Applications {
		if !a.Status.Valid() {
			return fmt.Errorf("application %s: unknown status %q", a.ID, a.Status)
		}
	}
	return nil
}

// Load fills the domain store from the dataset. Adds prepend, so each
// collection is loaded in reverse to keep the dataset's display order.
func Load(ds *Dataset, domain *store.DomainStore, lgr zerolog.Logger) {
	for i := len(ds.Opportunities) - 1; i >= 0; i-- {
		domain.AddOpportunity(ds.Opportunities[i])
	}
	for i := len(ds.Events) - 1; i >= 0; i-- {
		domain.AddEvent(ds.Events[i])
	}
	for i := len(ds.Applications) - 1; i >= 0; i-- {
		domain.AddApplication(ds.Applications[i])
	}
	for _, p := range ds.Profiles {
		domain.UpsertProfile(p)
	}

	lgr.Info().
		Int("users", len(ds.Users)).
		Int("profiles", len(ds.Profiles)).
		Int("opportunities", len(ds.Opportunities)).
		Int("events", len(ds.Events)).
		Int("applications", len(ds.Applications)).
		Msg("Seed roster loaded")
}

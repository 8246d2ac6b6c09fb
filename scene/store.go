package scene

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/celest"
)

// Visits is the persisted navigation history.
type Visits struct {
	Last   string         `yaml:"last"`
	Counts map[string]int `yaml:"counts"`
}

// VisitStore remembers which destinations were visited, persisted through
// gdata. A nil manager degrades to an in-memory store.
type VisitStore struct {
	manager *gdata.Manager // may be nil
	visits  Visits
}

const (
	visitsObject   = "visits"
	visitsProperty = "history"
)

// NewVisitStore creates a store and loads any saved history. Load failures
// are logged and leave an empty history.
func NewVisitStore(manager *gdata.Manager) *VisitStore {
	vs := &VisitStore{manager: manager}
	if manager == nil {
		log.Printf("[store] Warning: no data manager, visits are kept in memory only")
	}
	if err := vs.Load(); err != nil {
		log.Printf("[store] Warning: Failed to load visits: %v (starting fresh)", err)
	}
	return vs
}

// Load reads the saved history. A missing record is not an error.
func (vs *VisitStore) Load() error {
	vs.visits = Visits{Counts: map[string]int{}}
	if vs.manager == nil {
		return nil
	}
	if !vs.manager.ObjectPropExists(visitsObject, visitsProperty) {
		return nil
	}

	data, err := vs.manager.LoadObjectProp(visitsObject, visitsProperty)
	if err != nil {
		return fmt.Errorf("failed to load visits: %w", err)
	}
	var loaded Visits
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal visits: %w", err)
	}
	if loaded.Counts == nil {
		loaded.Counts = map[string]int{}
	}
	vs.visits = loaded
	return nil
}

// Save writes the history. It is a no-op without a manager.
func (vs *VisitStore) Save() error {
	if vs.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(vs.visits)
	if err != nil {
		return fmt.Errorf("failed to marshal visits: %w", err)
	}
	if err := vs.manager.SaveObjectProp(visitsObject, visitsProperty, data); err != nil {
		return fmt.Errorf("failed to save visits: %w", err)
	}
	return nil
}

// Record notes a visit to dest and saves.
func (vs *VisitStore) Record(dest celest.Destination) error {
	vs.visits.Last = dest.Name
	vs.visits.Counts[dest.Name]++
	return vs.Save()
}

// Last returns the most recently visited destination name.
func (vs *VisitStore) Last() string {
	return vs.visits.Last
}

// Count returns how many times the named destination was visited.
func (vs *VisitStore) Count(name string) int {
	return vs.visits.Counts[name]
}

// Persistent reports whether visits survive a restart.
func (vs *VisitStore) Persistent() bool {
	return vs.manager != nil
}

// Package catalog loads the engine's static lookup tables: the canonical
// skill vocabulary, salary benchmarks, location cost-of-living factors,
// and proof task question banks. Tables are immutable after loading and
// are injected into the scoring components rather than read as globals.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openhire/matchengine/internal/types"
)

//go:embed data/*.json
var dataFS embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

// SkillEntry maps a canonical skill name to the aliases that identify it in text
type SkillEntry struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// Benchmark is one market salary benchmark row
type Benchmark struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// LocationFactor is a cost-of-living multiplier keyed by a location substring
type LocationFactor struct {
	Match  string  `json:"match"`
	Factor float64 `json:"factor"`
}

// Catalog aggregates all static lookup tables used by the engine
type Catalog struct {
	Skills          []SkillEntry
	Benchmarks      []Benchmark
	LocationFactors []LocationFactor
	ProofTasks      map[string]types.TaskTemplate
}

// LoadDefault loads the embedded lookup tables, validating each against its
// JSON Schema.
func LoadDefault() (*Catalog, error) {
	c := &Catalog{}

	if err := loadEmbedded("skills", &c.Skills); err != nil {
		return nil, err
	}
	if err := loadEmbedded("benchmarks", &c.Benchmarks); err != nil {
		return nil, err
	}
	if err := loadEmbedded("location_factors", &c.LocationFactors); err != nil {
		return nil, err
	}

	var templates []types.TaskTemplate
	if err := loadEmbedded("proof_tasks", &templates); err != nil {
		return nil, err
	}
	c.ProofTasks = make(map[string]types.TaskTemplate, len(templates))
	for _, tmpl := range templates {
		c.ProofTasks[tmpl.Type] = tmpl
	}

	return c, nil
}

// LoadSkillsFile replaces the skill vocabulary with the contents of an
// external JSON file (used for fixtures and deployment overrides).
func (c *Catalog) LoadSkillsFile(path string) error {
	return loadFile(path, "skills", &c.Skills)
}

// LoadBenchmarksFile replaces the salary benchmarks with the contents of an
// external JSON file.
func (c *Catalog) LoadBenchmarksFile(path string) error {
	return loadFile(path, "benchmarks", &c.Benchmarks)
}

// loadEmbedded reads an embedded data file, validates it, and unmarshals it.
func loadEmbedded(name string, out any) error {
	data, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("failed to read embedded table %s: %w", name, err)
	}
	return parseTable(name, data, out)
}

// loadFile reads an external data file, validates it, and unmarshals it.
func loadFile(path, name string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read table file %s: %w", path, err)
	}
	return parseTable(name, data, out)
}

func parseTable(name string, data []byte, out any) error {
	if err := validateTable(name, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse table %s: %w", name, err)
	}
	return nil
}

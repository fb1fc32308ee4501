package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// HerdSchema is the top-level JSON structure of a herd snapshot.
type HerdSchema struct {
	Breedings   []BreedingImport  `json:"breedings"`
	Pregnancies []PregnancyImport `json:"pregnancies"`
}

// BreedingImport defines a logged breeding in the snapshot.
type BreedingImport struct {
	Ref          string `json:"ref"`
	DamID        string `json:"dam_id"`
	SireID       string `json:"sire_id"`
	Species      string `json:"species"`
	BreedingDate string `json:"breeding_date"`
	Method       string `json:"method"`
	Status       string `json:"status,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// PregnancyImport defines an open pregnancy with its ledgers. Births are not
// importable; they are only created by recording one.
type PregnancyImport struct {
	Ref            string          `json:"ref"`
	BreedingRef    *string         `json:"breeding_ref,omitempty"`
	DamID          string          `json:"dam_id"`
	Species        string          `json:"species"`
	ConceptionDate string          `json:"conception_date"`
	HealthStatus   string          `json:"health_status,omitempty"`
	Checkups       []CheckupImport `json:"checkups,omitempty"`
	BCS            []BCSImport     `json:"bcs,omitempty"`
}

// CheckupImport defines one checkup in chronological order.
type CheckupImport struct {
	Date            string  `json:"date"`
	BCS             float64 `json:"bcs"`
	WeightKg        float64 `json:"weight_kg"`
	Findings        string  `json:"findings,omitempty"`
	HealthStatus    string  `json:"health_status"`
	NextCheckupDate *string `json:"next_checkup_date,omitempty"`
}

// BCSImport defines one body condition score reading.
type BCSImport struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Notes string  `json:"notes,omitempty"`
}

// LoadHerdSchema reads and parses a herd snapshot JSON file. Unknown fields
// are rejected so that misspelt keys do not silently drop data.
func LoadHerdSchema(path string) (*HerdSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHerdSchema(data)
}

// ParseHerdSchema decodes a herd snapshot from raw JSON.
func ParseHerdSchema(data []byte) (*HerdSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var schema HerdSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing herd file: %w", err)
	}
	return &schema, nil
}

package domain

import (
	"fmt"
	"sort"
	"strings"
)

type Species string

const (
	SpeciesCattle Species = "cattle"
	SpeciesGoat   Species = "goat"
	SpeciesSheep  Species = "sheep"
)

// gestationTable maps each recognised species to its gestation length in days.
var gestationTable = map[Species]int{
	SpeciesCattle: 283,
	SpeciesGoat:   150,
	SpeciesSheep:  147,
}

var offspringPrefixes = map[Species]string{
	SpeciesCattle: "CLF",
	SpeciesGoat:   "KID",
	SpeciesSheep:  "LMB",
}

// GestationDays returns the fixed gestation length for the species.
// Unknown species fail closed with ErrUnknownSpecies.
func GestationDays(s Species) (int, error) {
	days, ok := gestationTable[s]
	if !ok {
		return 0, fmt.Errorf("gestation length for %q: %w", string(s), ErrUnknownSpecies)
	}
	return days, nil
}

// ParseSpecies normalises a user-supplied species name ("Goat", " cattle ").
func ParseSpecies(s string) (Species, error) {
	sp := Species(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := gestationTable[sp]; !ok {
		return "", fmt.Errorf("species %q: %w", s, ErrUnknownSpecies)
	}
	return sp, nil
}

// KnownSpecies lists the recognised species in alphabetical order.
func KnownSpecies() []Species {
	out := make([]Species, 0, len(gestationTable))
	for s := range gestationTable {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OffspringPrefix returns the tag prefix used for newborns of this species.
func (s Species) OffspringPrefix() string {
	if p, ok := offspringPrefixes[s]; ok {
		return p
	}
	return "OFF"
}

// DisplayName returns the species name with a leading capital.
func (s Species) DisplayName() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// parseOffspringSpec parses one --offspring value such as
// "sex=female,weight=3.2,vigor=strong,condition=normal". Unknown or repeated
// keys are rejected; sex, weight and vigor are required.
func parseOffspringSpec(spec string) (domain.OffspringInput, error) {
	var in domain.OffspringInput
	seen := make(map[string]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return in, fmt.Errorf("offspring %q: expected key=value, got %q", spec, part)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if seen[k] {
			return in, fmt.Errorf("offspring %q: %s given twice", spec, k)
		}
		seen[k] = true

		switch k {
		case "sex":
			in.Sex = domain.Sex(strings.ToLower(v))
			if in.Sex != domain.SexMale && in.Sex != domain.SexFemale {
				return in, fmt.Errorf("offspring %q: sex must be male or female", spec)
			}
		case "weight":
			w, err := strconv.ParseFloat(v, 64)
			if err != nil || !domain.PositiveFinite(w) {
				return in, fmt.Errorf("offspring %q: weight must be a positive number of kilograms", spec)
			}
			in.BirthWeightKg = w
		case "vigor":
			in.Vigor = domain.Vigor(strings.ToLower(v))
			if !domain.ValidVigors[in.Vigor] {
				return in, fmt.Errorf("offspring %q: unknown vigor %q", spec, v)
			}
		case "condition":
			in.Condition = v
		case "notes":
			in.Notes = v
		default:
			return in, fmt.Errorf("offspring %q: unknown key %q", spec, k)
		}
	}

	for _, req := range []string{"sex", "weight", "vigor"} {
		if !seen[req] {
			return in, fmt.Errorf("offspring %q: %s is required", spec, req)
		}
	}
	return in, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/repository"
)

// resolveBreedingID resolves a breeding identifier which can be:
//   - A full UUID
//   - A unique UUID prefix, as printed in list output
func resolveBreedingID(ctx context.Context, a *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("breeding ID is required")
	}
	if b, err := a.Breedings.GetByID(ctx, input); err == nil {
		return b.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	all, err := a.Breedings.List(ctx, repository.BreedingFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.ID)
	}
	return matchPrefix("breeding", input, ids)
}

// resolvePregnancyID resolves a pregnancy identifier which can be:
//   - A full UUID
//   - A dam ID with an open pregnancy
//   - A unique UUID prefix
func resolvePregnancyID(ctx context.Context, a *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("pregnancy ID or dam ID is required")
	}
	if p, err := a.Pregnancies.GetByID(ctx, input); err == nil {
		return p.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if p, err := a.Pregnancies.GetOpenByDam(ctx, input); err == nil {
		return p.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	all, err := a.Pregnancies.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	return matchPrefix("pregnancy", input, ids)
}

func matchPrefix(kind, prefix string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, strings.ToLower(prefix)) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, prefix, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%s prefix %q is ambiguous (%d matches)", kind, prefix, len(matches))
}

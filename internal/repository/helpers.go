package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

const (
	dateLayout = domain.DateLayout
	tsLayout   = time.RFC3339
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(layout)
}

// nullableString stores an empty string as SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func parseTime(field, s, layout string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return t, nil
}

// isUniqueViolation reports whether err came from a UNIQUE constraint on table.
func isUniqueViolation(err error, table string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+table+".")
}

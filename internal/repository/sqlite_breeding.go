package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
)

// SQLiteBreedingRepo implements BreedingRepo using a SQLite database.
type SQLiteBreedingRepo struct {
	db db.DBTX
}

// NewSQLiteBreedingRepo creates a new SQLiteBreedingRepo.
func NewSQLiteBreedingRepo(conn db.DBTX) *SQLiteBreedingRepo {
	return &SQLiteBreedingRepo{db: conn}
}

const breedingColumns = `id, dam_id, sire_id, species, breeding_date, method, status, notes,
	decided_at, created_at, updated_at`

func (r *SQLiteBreedingRepo) Create(ctx context.Context, b *domain.BreedingEvent) error {
	query := `INSERT INTO breeding_events (` + breedingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.DamID,
		b.SireID,
		string(b.Species),
		b.BreedingDate.Format(dateLayout),
		string(b.Method),
		string(b.Status),
		b.Notes,
		nullableTimeToString(b.DecidedAt, tsLayout),
		b.CreatedAt.UTC().Format(tsLayout),
		b.UpdatedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting breeding event: %w", err)
	}
	return nil
}

func (r *SQLiteBreedingRepo) GetByID(ctx context.Context, id string) (*domain.BreedingEvent, error) {
	query := `SELECT ` + breedingColumns + ` FROM breeding_events WHERE id = ?`
	b, err := scanBreeding(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("breeding event %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning breeding event: %w", err)
	}
	return b, nil
}

func (r *SQLiteBreedingRepo) List(ctx context.Context, filter BreedingFilter) ([]*domain.BreedingEvent, error) {
	var where []string
	var args []interface{}
	if filter.DamID != "" {
		where = append(where, "dam_id = ?")
		args = append(args, filter.DamID)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}

	query := `SELECT ` + breedingColumns + ` FROM breeding_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY breeding_date, created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing breeding events: %w", err)
	}
	defer rows.Close()

	var events []*domain.BreedingEvent
	for rows.Next() {
		b, err := scanBreeding(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning breeding row: %w", err)
		}
		events = append(events, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breeding events: %w", err)
	}
	return events, nil
}

// UpdateStatus persists a status decision. Identity fields never change.
func (r *SQLiteBreedingRepo) UpdateStatus(ctx context.Context, b *domain.BreedingEvent) error {
	query := `UPDATE breeding_events SET status = ?, decided_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(b.Status),
		nullableTimeToString(b.DecidedAt, tsLayout),
		b.UpdatedAt.UTC().Format(tsLayout),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating breeding status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("breeding event %s: %w", b.ID, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBreeding(row rowScanner) (*domain.BreedingEvent, error) {
	var b domain.BreedingEvent
	var species, method, status, breedingDate, createdAt, updatedAt string
	var decidedAt sql.NullString

	if err := row.Scan(
		&b.ID, &b.DamID, &b.SireID, &species, &breedingDate, &method, &status, &b.Notes,
		&decidedAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if b.BreedingDate, err = parseTime("breeding_date", breedingDate, dateLayout); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = parseTime("created_at", createdAt, tsLayout); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = parseTime("updated_at", updatedAt, tsLayout); err != nil {
		return nil, err
	}
	b.Species = domain.Species(species)
	b.Method = domain.BreedingMethod(method)
	b.Status = domain.BreedingStatus(status)
	b.DecidedAt = parseNullableTime(decidedAt, tsLayout)
	return &b, nil
}

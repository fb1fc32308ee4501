package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
)

// SQLitePregnancyRepo implements PregnancyRepo using a SQLite database.
//
// Every query drains and closes its rows before the next one starts: the
// session store runs on a single connection.
type SQLitePregnancyRepo struct {
	db db.DBTX
}

// NewSQLitePregnancyRepo creates a new SQLitePregnancyRepo.
func NewSQLitePregnancyRepo(conn db.DBTX) *SQLitePregnancyRepo {
	return &SQLitePregnancyRepo{db: conn}
}

const pregnancyColumns = `id, breeding_id, dam_id, species, conception_date, health_status,
	birth_status, last_checkup_at, birth_date, birth_record_id, calving_problem, calving_notes,
	created_at, updated_at`

func (r *SQLitePregnancyRepo) Create(ctx context.Context, p *domain.PregnancyRecord) error {
	query := `INSERT INTO pregnancies (` + pregnancyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		nullableString(p.BreedingID),
		p.DamID,
		string(p.Species),
		p.ConceptionDate.Format(dateLayout),
		string(p.HealthStatus),
		string(p.BirthStatus),
		nullableTimeToString(p.LastCheckupAt, tsLayout),
		nullableTimeToString(p.BirthDate, dateLayout),
		p.BirthRecordID,
		string(p.Calving.Problem),
		p.Calving.Notes,
		p.CreatedAt.UTC().Format(tsLayout),
		p.UpdatedAt.UTC().Format(tsLayout),
	)
	if isUniqueViolation(err, "pregnancies") {
		return fmt.Errorf("dam %s: %w", p.DamID, domain.ErrOpenPregnancyExists)
	}
	if err != nil {
		return fmt.Errorf("inserting pregnancy: %w", err)
	}
	return nil
}

func (r *SQLitePregnancyRepo) GetByID(ctx context.Context, id string) (*domain.PregnancyRecord, error) {
	query := `SELECT ` + pregnancyColumns + ` FROM pregnancies WHERE id = ?`
	p, err := scanPregnancy(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pregnancy %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning pregnancy: %w", err)
	}
	if err := r.loadLedgers(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePregnancyRepo) GetOpenByDam(ctx context.Context, damID string) (*domain.PregnancyRecord, error) {
	query := `SELECT ` + pregnancyColumns + ` FROM pregnancies WHERE dam_id = ? AND birth_status = ?`
	p, err := scanPregnancy(r.db.QueryRowContext(ctx, query, damID, string(domain.BirthPregnant)))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("open pregnancy for dam %s: %w", damID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning pregnancy: %w", err)
	}
	if err := r.loadLedgers(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePregnancyRepo) List(ctx context.Context, includeClosed bool) ([]*domain.PregnancyRecord, error) {
	query := `SELECT ` + pregnancyColumns + ` FROM pregnancies`
	var args []interface{}
	if !includeClosed {
		query += ` WHERE birth_status = ?`
		args = append(args, string(domain.BirthPregnant))
	}
	query += ` ORDER BY conception_date, dam_id, id`

	records, err := r.listHeaders(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, p := range records {
		if err := r.loadLedgers(ctx, p); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Update persists the mutable header fields. Ledgers are written through the
// Insert methods.
func (r *SQLitePregnancyRepo) Update(ctx context.Context, p *domain.PregnancyRecord) error {
	query := `UPDATE pregnancies SET health_status = ?, birth_status = ?, last_checkup_at = ?,
		birth_date = ?, birth_record_id = ?, calving_problem = ?, calving_notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(p.HealthStatus),
		string(p.BirthStatus),
		nullableTimeToString(p.LastCheckupAt, tsLayout),
		nullableTimeToString(p.BirthDate, dateLayout),
		p.BirthRecordID,
		string(p.Calving.Problem),
		p.Calving.Notes,
		p.UpdatedAt.UTC().Format(tsLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pregnancy: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pregnancy %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePregnancyRepo) InsertCheckup(ctx context.Context, c *domain.CheckupRecord) error {
	query := `INSERT INTO checkups (id, pregnancy_id, seq, checked_on, bcs, weight_kg, findings,
		health_status, next_checkup_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.PregnancyID,
		c.Seq,
		c.Date.Format(dateLayout),
		c.BCS,
		c.WeightKg,
		c.Findings,
		string(c.HealthStatus),
		nullableTimeToString(c.NextCheckupDate, dateLayout),
		c.CreatedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting checkup: %w", err)
	}
	return nil
}

func (r *SQLitePregnancyRepo) InsertBCS(ctx context.Context, e *domain.BCSEntry) error {
	query := `INSERT INTO bcs_entries (id, pregnancy_id, seq, recorded_on, month_label, score, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PregnancyID,
		e.Seq,
		e.Date.Format(dateLayout),
		e.MonthLabel,
		e.Score,
		e.Notes,
		e.CreatedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting BCS entry: %w", err)
	}
	return nil
}

func (r *SQLitePregnancyRepo) InsertOffspring(ctx context.Context, o *domain.OffspringRecord) error {
	query := `INSERT INTO offspring (id, pregnancy_id, seq, tag_id, sex, birth_weight_kg, condition,
		vigor, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.PregnancyID,
		o.Seq,
		o.TagID,
		string(o.Sex),
		o.BirthWeightKg,
		o.Condition,
		string(o.Vigor),
		o.Notes,
		o.CreatedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting offspring %s: %w", o.TagID, err)
	}
	return nil
}

func (r *SQLitePregnancyRepo) listHeaders(ctx context.Context, query string, args ...interface{}) ([]*domain.PregnancyRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pregnancies: %w", err)
	}
	defer rows.Close()

	var records []*domain.PregnancyRecord
	for rows.Next() {
		p, err := scanPregnancy(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pregnancy row: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pregnancies: %w", err)
	}
	return records, nil
}

func (r *SQLitePregnancyRepo) loadLedgers(ctx context.Context, p *domain.PregnancyRecord) error {
	var err error
	if p.Checkups, err = r.listCheckups(ctx, p.ID); err != nil {
		return err
	}
	if p.BCSEntries, err = r.listBCS(ctx, p.ID); err != nil {
		return err
	}
	if p.Offspring, err = r.listOffspring(ctx, p.ID); err != nil {
		return err
	}
	return nil
}

func (r *SQLitePregnancyRepo) listCheckups(ctx context.Context, pregnancyID string) ([]domain.CheckupRecord, error) {
	query := `SELECT id, pregnancy_id, seq, checked_on, bcs, weight_kg, findings, health_status,
		next_checkup_on, created_at
		FROM checkups WHERE pregnancy_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, pregnancyID)
	if err != nil {
		return nil, fmt.Errorf("listing checkups: %w", err)
	}
	defer rows.Close()

	var out []domain.CheckupRecord
	for rows.Next() {
		var c domain.CheckupRecord
		var checkedOn, health, createdAt string
		var next sql.NullString
		if err := rows.Scan(&c.ID, &c.PregnancyID, &c.Seq, &checkedOn, &c.BCS, &c.WeightKg,
			&c.Findings, &health, &next, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning checkup row: %w", err)
		}
		if c.Date, err = parseTime("checked_on", checkedOn, dateLayout); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime("created_at", createdAt, tsLayout); err != nil {
			return nil, err
		}
		c.HealthStatus = domain.HealthStatus(health)
		c.NextCheckupDate = parseNullableTime(next, dateLayout)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkups: %w", err)
	}
	return out, nil
}

func (r *SQLitePregnancyRepo) listBCS(ctx context.Context, pregnancyID string) ([]domain.BCSEntry, error) {
	query := `SELECT id, pregnancy_id, seq, recorded_on, month_label, score, notes, created_at
		FROM bcs_entries WHERE pregnancy_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, pregnancyID)
	if err != nil {
		return nil, fmt.Errorf("listing BCS entries: %w", err)
	}
	defer rows.Close()

	var out []domain.BCSEntry
	for rows.Next() {
		var e domain.BCSEntry
		var recordedOn, createdAt string
		if err := rows.Scan(&e.ID, &e.PregnancyID, &e.Seq, &recordedOn, &e.MonthLabel, &e.Score,
			&e.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning BCS row: %w", err)
		}
		if e.Date, err = parseTime("recorded_on", recordedOn, dateLayout); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime("created_at", createdAt, tsLayout); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating BCS entries: %w", err)
	}
	return out, nil
}

func (r *SQLitePregnancyRepo) listOffspring(ctx context.Context, pregnancyID string) ([]domain.OffspringRecord, error) {
	query := `SELECT id, pregnancy_id, seq, tag_id, sex, birth_weight_kg, condition, vigor, notes, created_at
		FROM offspring WHERE pregnancy_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, pregnancyID)
	if err != nil {
		return nil, fmt.Errorf("listing offspring: %w", err)
	}
	defer rows.Close()

	var out []domain.OffspringRecord
	for rows.Next() {
		var o domain.OffspringRecord
		var sex, vigor, createdAt string
		if err := rows.Scan(&o.ID, &o.PregnancyID, &o.Seq, &o.TagID, &sex, &o.BirthWeightKg,
			&o.Condition, &vigor, &o.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning offspring row: %w", err)
		}
		if o.CreatedAt, err = parseTime("created_at", createdAt, tsLayout); err != nil {
			return nil, err
		}
		o.Sex = domain.Sex(sex)
		o.Vigor = domain.Vigor(vigor)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offspring: %w", err)
	}
	return out, nil
}

func scanPregnancy(row rowScanner) (*domain.PregnancyRecord, error) {
	var p domain.PregnancyRecord
	var breedingID, lastCheckup, birthDate sql.NullString
	var species, conception, health, birthStatus, problem, createdAt, updatedAt string

	if err := row.Scan(
		&p.ID, &breedingID, &p.DamID, &species, &conception, &health,
		&birthStatus, &lastCheckup, &birthDate, &p.BirthRecordID, &problem, &p.Calving.Notes,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if p.ConceptionDate, err = parseTime("conception_date", conception, dateLayout); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime("created_at", createdAt, tsLayout); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", updatedAt, tsLayout); err != nil {
		return nil, err
	}
	p.BreedingID = breedingID.String
	p.Species = domain.Species(species)
	p.HealthStatus = domain.HealthStatus(health)
	p.BirthStatus = domain.BirthStatus(birthStatus)
	p.LastCheckupAt = parseNullableTime(lastCheckup, tsLayout)
	p.BirthDate = parseNullableTime(birthDate, dateLayout)
	p.Calving.Problem = domain.CalvingProblem(problem)
	return &p, nil
}

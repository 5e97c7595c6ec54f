package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ferry/internal/court/models"
	"ferry/pkg/domain"
	txcontext "ferry/pkg/platform/tx"
)

//go:embed schema.sql
var schemaSQL string

// Postgres persists court records in PostgreSQL. All domain logic stays in
// the service layer; the one exception is CreateRatification, whose atomic
// check-pick-insert is inherently a storage concern.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed court store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the court tables when missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// pq error codes for constraint violations.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func pqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// ---------------------------------------------------------------------------
// People
// ---------------------------------------------------------------------------

func (s *Postgres) CreatePerson(ctx context.Context, person models.Person) error {
	query := `
		INSERT INTO people (id, display_name, external_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		person.ID.String(), person.DisplayName, nullableInt64(person.ExternalID),
		person.CreatedAt, person.UpdatedAt,
	)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (s *Postgres) GetPerson(ctx context.Context, id domain.PersonID) (models.Person, error) {
	query := `
		SELECT id, display_name, external_id, created_at, updated_at
		FROM people
		WHERE id = $1
	`
	person, err := scanPerson(s.execer(ctx).QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Person{}, ErrNotFound
		}
		return models.Person{}, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

func (s *Postgres) ListPeople(ctx context.Context) ([]models.Person, error) {
	query := `
		SELECT id, display_name, external_id, created_at, updated_at
		FROM people
		ORDER BY display_name
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("list people: %w", err)
		}
		people = append(people, person)
	}
	return people, rows.Err()
}

func (s *Postgres) UpdatePerson(ctx context.Context, person models.Person) error {
	query := `
		UPDATE people
		SET display_name = $2, external_id = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		person.ID.String(), person.DisplayName, nullableInt64(person.ExternalID), person.UpdatedAt,
	)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("update person: %w", err)
	}
	return requireRowAffected(res)
}

func (s *Postgres) DeletePerson(ctx context.Context, id domain.PersonID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id.String())
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return ErrReferenced
		}
		return fmt.Errorf("delete person: %w", err)
	}
	return requireRowAffected(res)
}

func (s *Postgres) ListRatifiedAccusations(ctx context.Context) ([]RatifiedAccusation, error) {
	query := `
		SELECT a.suspect_id, a.created_at
		FROM ratifications r
		JOIN accusations a ON a.id = r.accusation_id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ratified accusations: %w", err)
	}
	defer rows.Close()

	var out []RatifiedAccusation
	for rows.Next() {
		var ra RatifiedAccusation
		var suspect string
		if err := rows.Scan(&suspect, &ra.CreatedAt); err != nil {
			return nil, fmt.Errorf("list ratified accusations: %w", err)
		}
		suspectID, err := uuid.Parse(suspect)
		if err != nil {
			return nil, fmt.Errorf("list ratified accusations: %w", err)
		}
		ra.Suspect = domain.PersonID(suspectID)
		out = append(out, ra)
	}
	return out, rows.Err()
}

// ---------------------------------------------------------------------------
// Accusations
// ---------------------------------------------------------------------------

func (s *Postgres) CreateAccusation(ctx context.Context, accusation models.Accusation) error {
	query := `
		INSERT INTO accusations (id, quote, suspect_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		accusation.ID.String(), accusation.Quote,
		accusation.Suspect.String(), accusation.CreatedBy.String(),
		accusation.CreatedAt, accusation.UpdatedAt,
	)
	if err != nil {
		switch pqErrorCode(err) {
		case pqCheckViolation:
			// The self-accusation check constraint is the store-level twin
			// of the validation in models.Accusation.Validate.
			return ErrSelfAccusation
		case pqForeignKeyViolation:
			return ErrNotFound
		}
		return fmt.Errorf("create accusation: %w", err)
	}
	return nil
}

func (s *Postgres) GetAccusation(ctx context.Context, id domain.AccusationID) (models.Accusation, error) {
	query := `
		SELECT id, quote, suspect_id, created_by, created_at, updated_at
		FROM accusations
		WHERE id = $1
	`
	accusation, err := scanAccusation(s.execer(ctx).QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Accusation{}, ErrNotFound
		}
		return models.Accusation{}, fmt.Errorf("get accusation: %w", err)
	}
	return accusation, nil
}

func (s *Postgres) ListAccusations(ctx context.Context, filter AccusationFilter) ([]models.Accusation, error) {
	query := `
		SELECT id, quote, suspect_id, created_by, created_at, updated_at
		FROM accusations
		WHERE ($1 = '' OR suspect_id = $1::uuid)
		  AND ($2 = '' OR created_by = $2::uuid)
		ORDER BY created_at DESC
	`
	suspect, createdBy := "", ""
	if !filter.Suspect.IsNil() {
		suspect = filter.Suspect.String()
	}
	if !filter.CreatedBy.IsNil() {
		createdBy = filter.CreatedBy.String()
	}
	rows, err := s.execer(ctx).QueryContext(ctx, query, suspect, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list accusations: %w", err)
	}
	defer rows.Close()

	var accusations []models.Accusation
	for rows.Next() {
		accusation, err := scanAccusation(rows)
		if err != nil {
			return nil, fmt.Errorf("list accusations: %w", err)
		}
		accusations = append(accusations, accusation)
	}
	return accusations, rows.Err()
}

func (s *Postgres) UpdateAccusation(ctx context.Context, accusation models.Accusation) error {
	query := `
		UPDATE accusations
		SET quote = $2, updated_at = $3
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		accusation.ID.String(), accusation.Quote, accusation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update accusation: %w", err)
	}
	return requireRowAffected(res)
}

func (s *Postgres) DeleteAccusation(ctx context.Context, id domain.AccusationID) error {
	// The ratification FK cascades, implementing the delete cascade.
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM accusations WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete accusation: %w", err)
	}
	return requireRowAffected(res)
}

// ---------------------------------------------------------------------------
// Consequences
// ---------------------------------------------------------------------------

func (s *Postgres) CreateConsequence(ctx context.Context, consequence models.Consequence) error {
	query := `
		INSERT INTO consequences (id, content, is_enabled, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		consequence.ID.String(), consequence.Content, consequence.IsEnabled,
		consequence.CreatedBy.String(), consequence.CreatedAt, consequence.UpdatedAt,
	)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return ErrNotFound
		}
		return fmt.Errorf("create consequence: %w", err)
	}
	return nil
}

func (s *Postgres) GetConsequence(ctx context.Context, id domain.ConsequenceID) (models.Consequence, error) {
	query := `
		SELECT id, content, is_enabled, created_by, created_at, updated_at
		FROM consequences
		WHERE id = $1
	`
	consequence, err := scanConsequence(s.execer(ctx).QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Consequence{}, ErrNotFound
		}
		return models.Consequence{}, fmt.Errorf("get consequence: %w", err)
	}
	return consequence, nil
}

func (s *Postgres) ListConsequences(ctx context.Context) ([]models.Consequence, error) {
	query := `
		SELECT id, content, is_enabled, created_by, created_at, updated_at
		FROM consequences
		ORDER BY content
	`
	return s.queryConsequences(ctx, query)
}

func (s *Postgres) ListConsequencesOwnedBy(ctx context.Context, owner domain.PersonID) ([]models.Consequence, error) {
	query := `
		SELECT id, content, is_enabled, created_by, created_at, updated_at
		FROM consequences
		WHERE created_by = $1
		ORDER BY content
	`
	return s.queryConsequences(ctx, query, owner.String())
}

func (s *Postgres) queryConsequences(ctx context.Context, query string, args ...any) ([]models.Consequence, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consequences: %w", err)
	}
	defer rows.Close()

	var consequences []models.Consequence
	for rows.Next() {
		consequence, err := scanConsequence(rows)
		if err != nil {
			return nil, fmt.Errorf("list consequences: %w", err)
		}
		consequences = append(consequences, consequence)
	}
	return consequences, rows.Err()
}

func (s *Postgres) UpdateConsequence(ctx context.Context, consequence models.Consequence) error {
	query := `
		UPDATE consequences
		SET content = $2, is_enabled = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		consequence.ID.String(), consequence.Content, consequence.IsEnabled, consequence.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consequence: %w", err)
	}
	return requireRowAffected(res)
}

func (s *Postgres) DeleteConsequence(ctx context.Context, id domain.ConsequenceID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM consequences WHERE id = $1`, id.String())
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return ErrReferenced
		}
		return fmt.Errorf("delete consequence: %w", err)
	}
	return requireRowAffected(res)
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (models.Person, error) {
	var (
		person     models.Person
		id         string
		externalID sql.NullInt64
	)
	if err := row.Scan(&id, &person.DisplayName, &externalID, &person.CreatedAt, &person.UpdatedAt); err != nil {
		return models.Person{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Person{}, err
	}
	person.ID = domain.PersonID(parsed)
	if externalID.Valid {
		person.ExternalID = &externalID.Int64
	}
	return person, nil
}

func scanAccusation(row rowScanner) (models.Accusation, error) {
	var (
		accusation models.Accusation
		id         string
		suspect    string
		createdBy  string
	)
	if err := row.Scan(&id, &accusation.Quote, &suspect, &createdBy, &accusation.CreatedAt, &accusation.UpdatedAt); err != nil {
		return models.Accusation{}, err
	}
	for _, pair := range []struct {
		raw  string
		dest func(uuid.UUID)
	}{
		{id, func(u uuid.UUID) { accusation.ID = domain.AccusationID(u) }},
		{suspect, func(u uuid.UUID) { accusation.Suspect = domain.PersonID(u) }},
		{createdBy, func(u uuid.UUID) { accusation.CreatedBy = domain.PersonID(u) }},
	} {
		parsed, err := uuid.Parse(pair.raw)
		if err != nil {
			return models.Accusation{}, err
		}
		pair.dest(parsed)
	}
	return accusation, nil
}

func scanConsequence(row rowScanner) (models.Consequence, error) {
	var (
		consequence models.Consequence
		id          string
		createdBy   string
	)
	if err := row.Scan(&id, &consequence.Content, &consequence.IsEnabled, &createdBy, &consequence.CreatedAt, &consequence.UpdatedAt); err != nil {
		return models.Consequence{}, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return models.Consequence{}, err
	}
	parsedCreatedBy, err := uuid.Parse(createdBy)
	if err != nil {
		return models.Consequence{}, err
	}
	consequence.ID = domain.ConsequenceID(parsedID)
	consequence.CreatedBy = domain.PersonID(parsedCreatedBy)
	return consequence, nil
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

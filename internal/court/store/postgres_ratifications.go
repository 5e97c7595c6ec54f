package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ferry/internal/court/models"
	"ferry/pkg/domain"
)

func (s *Postgres) GetRatification(ctx context.Context, accusationID domain.AccusationID) (models.Ratification, error) {
	query := `
		SELECT id, accusation_id, consequence_id, created_by, created_at, updated_at
		FROM ratifications
		WHERE accusation_id = $1
	`
	rat, err := scanRatification(s.execer(ctx).QueryRowContext(ctx, query, accusationID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ratification{}, ErrNotFound
		}
		return models.Ratification{}, fmt.Errorf("get ratification: %w", err)
	}
	return rat, nil
}

// CreateRatification performs the check-pick-insert sequence in a single
// transaction. The accusation row is locked so two concurrent attempts on the
// same accusation serialize: one inserts, the other observes the existing row
// and fails with ErrAlreadyRatified. The unique constraint on accusation_id
// is the final backstop.
func (s *Postgres) CreateRatification(ctx context.Context, rat models.Ratification) (models.Ratification, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Ratification{}, fmt.Errorf("begin ratification tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var lockedID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM accusations WHERE id = $1 FOR UPDATE`,
		rat.Accusation.String(),
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ratification{}, ErrNotFound
		}
		return models.Ratification{}, fmt.Errorf("lock accusation: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ratifications WHERE accusation_id = $1)`,
		rat.Accusation.String(),
	).Scan(&exists)
	if err != nil {
		return models.Ratification{}, fmt.Errorf("check existing ratification: %w", err)
	}
	if exists {
		return models.Ratification{}, ErrAlreadyRatified
	}

	// The pick and the insert share the transaction so a consequence disabled
	// after the pick still commits consistently; a stale pick is acceptable,
	// an empty pool is not.
	var consequenceID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM consequences WHERE is_enabled ORDER BY random() LIMIT 1`,
	).Scan(&consequenceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ratification{}, ErrNoConsequences
		}
		return models.Ratification{}, fmt.Errorf("pick consequence: %w", err)
	}
	parsed, err := uuid.Parse(consequenceID)
	if err != nil {
		return models.Ratification{}, fmt.Errorf("pick consequence: %w", err)
	}
	rat.Consequence = domain.ConsequenceID(parsed)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ratifications (id, accusation_id, consequence_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		rat.ID.String(), rat.Accusation.String(), rat.Consequence.String(),
		rat.CreatedBy.String(), rat.CreatedAt, rat.UpdatedAt,
	)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			return models.Ratification{}, ErrAlreadyRatified
		}
		return models.Ratification{}, fmt.Errorf("insert ratification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Ratification{}, fmt.Errorf("commit ratification: %w", err)
	}
	return rat, nil
}

func (s *Postgres) DeleteRatification(ctx context.Context, accusationID domain.AccusationID) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM ratifications WHERE accusation_id = $1`, accusationID.String(),
	)
	if err != nil {
		return fmt.Errorf("delete ratification: %w", err)
	}
	return requireRowAffected(res)
}

func scanRatification(row rowScanner) (models.Ratification, error) {
	var (
		rat         models.Ratification
		id          string
		accusation  string
		consequence string
		createdBy   string
	)
	if err := row.Scan(&id, &accusation, &consequence, &createdBy, &rat.CreatedAt, &rat.UpdatedAt); err != nil {
		return models.Ratification{}, err
	}
	for _, pair := range []struct {
		raw  string
		dest func(uuid.UUID)
	}{
		{id, func(u uuid.UUID) { rat.ID = domain.RatificationID(u) }},
		{accusation, func(u uuid.UUID) { rat.Accusation = domain.AccusationID(u) }},
		{consequence, func(u uuid.UUID) { rat.Consequence = domain.ConsequenceID(u) }},
		{createdBy, func(u uuid.UUID) { rat.CreatedBy = domain.PersonID(u) }},
	} {
		parsed, err := uuid.Parse(pair.raw)
		if err != nil {
			return models.Ratification{}, err
		}
		pair.dest(parsed)
	}
	return rat, nil
}

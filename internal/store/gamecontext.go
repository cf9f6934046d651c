package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roach88/playsheet/internal/domain"
)

// GameContext returns the stored game context, or the default when none is
// stored. It never fails: read errors are logged and the default returned.
func (s *Store) GameContext(ctx context.Context) domain.GameContext {
	gc, err := s.readGameContext(ctx)
	if err != nil {
		s.logger.Warn("read game context failed, using default", "error", err)
		return domain.DefaultGameContext()
	}
	return gc
}

func (s *Store) readGameContext(ctx context.Context) (domain.GameContext, error) {
	var gc domain.GameContext
	var side string
	err := s.db.QueryRowContext(ctx,
		`SELECT down, distance, field_side, yard_line FROM game_context WHERE id = ?`,
		domain.GameContextID,
	).Scan(&gc.Down, &gc.Distance, &side, &gc.YardLine)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultGameContext(), nil
	}
	if err != nil {
		return domain.GameContext{}, err
	}
	gc.FieldSide = domain.FieldSide(side)
	return gc, nil
}

// UpdateGameContext merges patch into the current (or default) context and
// stores the result under the fixed key. Unlike GameContext, a stored record
// that cannot be read is a storage error and is left untouched.
func (s *Store) UpdateGameContext(ctx context.Context, patch domain.GameContextPatch) (domain.GameContext, error) {
	const op = "update game context"

	current, err := s.readGameContext(ctx)
	if err != nil {
		return domain.GameContext{}, storageErr(op, 0, err)
	}

	next := patch.Apply(current)
	if err := next.Validate(); err != nil {
		return domain.GameContext{}, invalid(op, 0, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO game_context (id, down, distance, field_side, yard_line)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			down = excluded.down,
			distance = excluded.distance,
			field_side = excluded.field_side,
			yard_line = excluded.yard_line
	`,
		domain.GameContextID,
		next.Down,
		next.Distance,
		string(next.FieldSide),
		next.YardLine,
	)
	if err != nil {
		return domain.GameContext{}, storageErr(op, 0, err)
	}

	s.notify(ctx)
	return next, nil
}

// ClearGameContext deletes the stored context; the next read returns the
// default.
func (s *Store) ClearGameContext(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM game_context WHERE id = ?`, domain.GameContextID); err != nil {
		return storageErr("clear game context", 0, err)
	}
	s.notify(ctx)
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/playsheet/internal/domain"
)

// Add puts a play on the playsheet and returns its new id.
//
// added_at is stamped from the store clock, notes start empty and the entry
// is unrated. Add never rejects a play that is already on the playsheet.
func (s *Store) Add(ctx context.Context, in domain.NewEntry, side domain.Side) (int64, error) {
	const op = "add entry"

	if !side.Valid() {
		return 0, invalid(op, 0, fmt.Errorf("%w: side %q must be one of %v", domain.ErrInvalidValue, side, domain.Sides))
	}

	tags, err := marshalTags(in.Tags)
	if err != nil {
		return 0, invalid(op, 0, err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO my_plays
		(play_id, playbook, formation_group, formation, play_name, play_type, side, tags, notes, rating, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', NULL, ?)
	`,
		in.PlayID,
		in.Playbook,
		in.FormationGroup,
		in.Formation,
		in.PlayName,
		in.PlayType,
		string(side),
		tags,
		marshalTime(s.now()),
	)
	if err != nil {
		return 0, storageErr(op, 0, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr(op, 0, err)
	}

	s.notify(ctx)
	return id, nil
}

// Remove deletes an entry. Removing an absent id is not an error.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM my_plays WHERE id = ?`, id); err != nil {
		return storageErr("remove entry", id, err)
	}
	s.notify(ctx)
	return nil
}

// Update merges patch into the entry and returns the result.
//
// Fields the patch leaves nil are untouched. A missing id is NOT_FOUND and
// an out-of-range rating or unknown side is INVALID; in both cases nothing
// is written.
func (s *Store) Update(ctx context.Context, id int64, patch domain.Patch) (domain.Entry, error) {
	const op = "update entry"

	if err := patch.Validate(); err != nil {
		return domain.Entry{}, invalid(op, id, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Entry{}, storageErr(op, id, err)
	}
	defer tx.Rollback()

	current, err := getEntry(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, notFound(op, id)
		}
		return domain.Entry{}, storageErr(op, id, err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	next := patch.Apply(current)
	if err := writeEntry(ctx, tx, next); err != nil {
		return domain.Entry{}, storageErr(op, id, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Entry{}, storageErr(op, id, err)
	}

	s.notify(ctx)
	return next, nil
}

// UpdateDefensiveAdjustments replaces only the entry's defensive
// adjustments. Coaching fields left empty take their defaults.
func (s *Store) UpdateDefensiveAdjustments(ctx context.Context, id int64, adj domain.DefensiveAdjustments) (domain.Entry, error) {
	adj.Coaching = adj.Coaching.WithDefaults()
	return s.Update(ctx, id, domain.Patch{DefensiveAdjustments: &adj})
}

// writeEntry rewrites every mutable column of e. id and added_at are never
// written after insert.
func writeEntry(ctx context.Context, tx *sql.Tx, e domain.Entry) error {
	tags, err := marshalTags(e.Tags)
	if err != nil {
		return err
	}
	adj, err := marshalAdjustments(e.DefensiveAdjustments)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE my_plays SET
			play_id = ?, playbook = ?, formation_group = ?, formation = ?,
			play_name = ?, play_type = ?, side = ?, tags = ?, notes = ?,
			rating = ?, defensive_adjustments = ?
		WHERE id = ?
	`,
		e.PlayID,
		e.Playbook,
		e.FormationGroup,
		e.Formation,
		e.PlayName,
		e.PlayType,
		nullSide(e.Side),
		tags,
		e.Notes,
		nullRating(e.Rating),
		adj,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

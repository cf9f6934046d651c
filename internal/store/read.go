package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/playsheet/internal/domain"
)

const entryColumns = `id, play_id, playbook, formation_group, formation, play_name, play_type,
	side, tags, notes, rating, added_at, defensive_adjustments`

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Get returns one entry. A missing id is NOT_FOUND.
func (s *Store) Get(ctx context.Context, id int64) (domain.Entry, error) {
	e, err := getEntry(ctx, s.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Entry{}, notFound("get entry", id)
	}
	if err != nil {
		return domain.Entry{}, storageErr("get entry", id, err)
	}
	return e, nil
}

// QueryBySide returns the entries filed under side, ordered by id.
// Rows written before sides were recorded never match.
func (s *Store) QueryBySide(ctx context.Context, side domain.Side) ([]domain.Entry, error) {
	entries, err := queryEntries(ctx, s.db,
		`SELECT `+entryColumns+` FROM my_plays WHERE side = ? ORDER BY id ASC`, string(side))
	if err != nil {
		return nil, storageErr("query entries by side", 0, err)
	}
	return entries, nil
}

// QueryAll returns every entry ordered by id.
func (s *Store) QueryAll(ctx context.Context) ([]domain.Entry, error) {
	entries, err := queryEntries(ctx, s.db, `SELECT `+entryColumns+` FROM my_plays ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr("query entries", 0, err)
	}
	return entries, nil
}

// ContainsPlay reports whether any entry references the catalog play.
func (s *Store) ContainsPlay(ctx context.Context, playID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM my_plays WHERE play_id = ?`, playID).Scan(&n)
	if err != nil {
		return false, storageErr("contains play", 0, err)
	}
	return n > 0, nil
}

// PlayIDs returns the set of catalog play ids on the playsheet.
func (s *Store) PlayIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT play_id FROM my_plays`)
	if err != nil {
		return nil, storageErr("list play ids", 0, err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("list play ids", 0, err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list play ids", 0, err)
	}
	return ids, nil
}

func getEntry(ctx context.Context, q querier, id int64) (domain.Entry, error) {
	row := q.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM my_plays WHERE id = ?`, id)
	return scanEntry(row)
}

func queryEntries(ctx context.Context, q querier, query string, args ...any) ([]domain.Entry, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (domain.Entry, error) {
	var (
		e       domain.Entry
		side    sql.NullString
		tags    string
		rating  sql.NullInt64
		addedAt string
		adj     sql.NullString
	)
	err := sc.Scan(
		&e.ID,
		&e.PlayID,
		&e.Playbook,
		&e.FormationGroup,
		&e.Formation,
		&e.PlayName,
		&e.PlayType,
		&side,
		&tags,
		&e.Notes,
		&rating,
		&addedAt,
		&adj,
	)
	if err != nil {
		return domain.Entry{}, err
	}

	e.Side = domain.Side(side.String)
	e.Rating = int(rating.Int64)
	if e.Tags, err = unmarshalTags(tags); err != nil {
		return domain.Entry{}, err
	}
	if e.AddedAt, err = unmarshalTime(addedAt); err != nil {
		return domain.Entry{}, err
	}
	if e.DefensiveAdjustments, err = unmarshalAdjustments(adj); err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

package store

import (
	"context"

	"github.com/roach88/playsheet/internal/domain"
)

// AddGameSession records a played game and returns its id.
func (s *Store) AddGameSession(ctx context.Context, gs domain.GameSession) (int64, error) {
	const op = "add game session"

	date := gs.Date
	if date.IsZero() {
		date = s.now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO game_sessions (opponent, date, result, notes) VALUES (?, ?, ?, ?)`,
		gs.Opponent, marshalTime(date), gs.Result, gs.Notes,
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

// GameSessions returns every recorded session ordered by id.
func (s *Store) GameSessions(ctx context.Context) ([]domain.GameSession, error) {
	const op = "list game sessions"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, opponent, date, result, notes FROM game_sessions ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr(op, 0, err)
	}
	defer rows.Close()

	sessions := []domain.GameSession{}
	for rows.Next() {
		var gs domain.GameSession
		var date string
		if err := rows.Scan(&gs.ID, &gs.Opponent, &date, &gs.Result, &gs.Notes); err != nil {
			return nil, storageErr(op, 0, err)
		}
		if gs.Date, err = unmarshalTime(date); err != nil {
			return nil, storageErr(op, gs.ID, err)
		}
		sessions = append(sessions, gs)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, 0, err)
	}
	return sessions, nil
}

// AddPlayPerformance records a play's results in a session. The session
// must exist.
func (s *Store) AddPlayPerformance(ctx context.Context, pp domain.PlayPerformance) (int64, error) {
	const op = "add play performance"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO play_performance
		(session_id, play_id, call_count, success_count, yards_gained, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		pp.SessionID, pp.PlayID, pp.CallCount, pp.SuccessCount, pp.YardsGained, pp.Notes,
	)
	if err != nil {
		return 0, storageErr(op, pp.SessionID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr(op, pp.SessionID, err)
	}

	s.notify(ctx)
	return id, nil
}

// PlayPerformance returns the performance rows of one session ordered by id.
func (s *Store) PlayPerformance(ctx context.Context, sessionID int64) ([]domain.PlayPerformance, error) {
	const op = "list play performance"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, play_id, call_count, success_count, yards_gained, notes
		FROM play_performance WHERE session_id = ? ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, storageErr(op, sessionID, err)
	}
	defer rows.Close()

	out := []domain.PlayPerformance{}
	for rows.Next() {
		var pp domain.PlayPerformance
		if err := rows.Scan(&pp.ID, &pp.SessionID, &pp.PlayID, &pp.CallCount, &pp.SuccessCount, &pp.YardsGained, &pp.Notes); err != nil {
			return nil, storageErr(op, sessionID, err)
		}
		out = append(out, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, sessionID, err)
	}
	return out, nil
}

package domain

import "time"

// GameSession is a played game kept for post-game review.
type GameSession struct {
	ID       int64     `json:"id"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
	Result   string    `json:"result"`
	Notes    string    `json:"notes"`
}

// PlayPerformance records how a play did during one game session.
// PlayID is a soft reference to a catalog play, like Entry.PlayID.
type PlayPerformance struct {
	ID           int64  `json:"id"`
	SessionID    int64  `json:"session_id"`
	PlayID       string `json:"play_id"`
	CallCount    int    `json:"call_count"`
	SuccessCount int    `json:"success_count"`
	YardsGained  int    `json:"yards_gained"`
	Notes        string `json:"notes"`
}

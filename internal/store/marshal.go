package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/playsheet/internal/domain"
)

// Timestamps are stored as RFC 3339 TEXT in UTC so they sort lexically.
const timeLayout = time.RFC3339Nano

func marshalTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func unmarshalTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unmarshal time: %w", err)
	}
	return t, nil
}

// marshalTags converts a TagSet to a JSON array TEXT. An empty set is "[]".
func marshalTags(tags domain.TagSet) (string, error) {
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

func unmarshalTags(data string) (domain.TagSet, error) {
	if data == "" {
		return domain.TagSet{}, nil
	}
	var tags domain.TagSet
	if err := json.Unmarshal([]byte(data), &tags); err != nil {
		return domain.TagSet{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	return tags, nil
}

// marshalAdjustments stores nil as SQL NULL.
func marshalAdjustments(adj *domain.DefensiveAdjustments) (sql.NullString, error) {
	if adj == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(adj)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal defensive adjustments: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalAdjustments(data sql.NullString) (*domain.DefensiveAdjustments, error) {
	if !data.Valid || data.String == "" {
		return nil, nil
	}
	var adj domain.DefensiveAdjustments
	if err := json.Unmarshal([]byte(data.String), &adj); err != nil {
		return nil, fmt.Errorf("unmarshal defensive adjustments: %w", err)
	}
	// Records saved before a coaching field existed get its default.
	adj.Coaching = adj.Coaching.WithDefaults()
	return &adj, nil
}

func nullSide(side domain.Side) sql.NullString {
	return sql.NullString{String: string(side), Valid: side != ""}
}

func nullRating(rating int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(rating), Valid: rating > 0}
}

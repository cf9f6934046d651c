package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source fetches the raw catalog document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)

	// Name identifies the source in errors and logs.
	Name() string
}

// SourceFor returns an HTTPSource for http(s) URLs and a FileSource otherwise.
func SourceFor(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return FileSource{Path: location}
}

// FileSource reads the catalog from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func (s FileSource) Name() string {
	return s.Path
}

// BytesSource serves an in-memory document (embedded data, tests).
type BytesSource struct {
	Label string
	Data  []byte
}

func (s BytesSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Data, nil
}

func (s BytesSource) Name() string {
	if s.Label == "" {
		return "memory"
	}
	return s.Label
}

// Defaults for HTTPSource.
const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultMaxBytes    = 64 << 20
)

// HTTPSource GETs the catalog from a URL.
//
// Client defaults to an http.Client with DefaultHTTPTimeout; MaxBytes caps the
// body size (DefaultMaxBytes when zero). Any status other than 200 is an error.
type HTTPSource struct {
	URL      string
	Client   *http.Client
	MaxBytes int64
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "playsheet/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("catalog larger than %d bytes", limit)
	}
	return body, nil
}

func (s *HTTPSource) Name() string {
	return s.URL
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/config"
	"github.com/roach88/playsheet/internal/store"
)

// app is the per-invocation environment shared by commands: resolved
// config, logger, output formatter and a lazily opened store.
type app struct {
	opts   *RootOptions
	cfg    *config.Config
	logger *slog.Logger
	out    *OutputFormatter
	st     *store.Store
}

// newApp loads config and applies the global flag overrides. Errors are
// already reported through the formatter.
func newApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, out.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	if opts.Catalog != "" {
		cfg.Catalog.URL = ""
		cfg.Catalog.Path = opts.Catalog
	}

	// Configure logging based on config and the verbose flag
	logLevel, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, out.Fail(ExitCommandError, ErrCodeConfig, "invalid log level", err)
	}
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})

	return &app{
		opts:   opts,
		cfg:    cfg,
		logger: slog.New(handler),
		out:    out,
	}, nil
}

// openStore opens the playsheet database, creating its directory if needed.
func (a *app) openStore() (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}

	path := a.cfg.Database
	a.logger.Debug("opening database", "path", path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, a.out.Fail(ExitCommandError, ErrCodeDatabase, "failed to create database directory", err)
		}
	}

	st, err := store.Open(path, store.WithLogger(a.logger))
	if err != nil {
		return nil, a.out.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	a.st = st
	return st, nil
}

// loadCatalog fetches the configured catalog.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	location, err := a.cfg.CatalogLocation()
	if err != nil {
		return nil, a.out.Fail(ExitCommandError, ErrCodeConfig, "no catalog configured", err)
	}
	timeout, err := a.cfg.Catalog.TimeoutDuration()
	if err != nil {
		return nil, a.out.Fail(ExitCommandError, ErrCodeConfig, "invalid catalog timeout", err)
	}

	src := catalog.SourceFor(location)
	if hs, ok := src.(*catalog.HTTPSource); ok && timeout > 0 {
		hs.Client = &http.Client{Timeout: timeout}
	}
	a.out.VerboseLog("loading catalog from %s", src.Name())

	cat, err := catalog.New(src, catalog.WithLogger(a.logger)).Load(ctx)
	if err != nil {
		return nil, a.out.Fail(ExitCommandError, ErrCodeCatalog, "failed to load catalog", err)
	}
	return cat, nil
}

// fail reports an operation error with the code classify assigns it.
func (a *app) fail(message string, err error) error {
	exitCode, code := classify(err)
	return a.out.Fail(exitCode, code, message, err)
}

// invalid reports bad user input.
func (a *app) invalid(message string, err error) error {
	return a.out.Fail(ExitCommandError, ErrCodeInvalid, message, err)
}

func (a *app) close() {
	if a.st == nil {
		return
	}
	if err := a.st.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
	a.st = nil
}

// parseID parses an entry id argument.
func (a *app) parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, a.invalid(fmt.Sprintf("invalid entry id %q", arg), nil)
	}
	return id, nil
}

// parseIDs parses every argument as an entry id.
func (a *app) parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := a.parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/search"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Side     string
	Playbook string
	Limit    int
}

// SearchHit is a search result with its playsheet status.
type SearchHit struct {
	search.Hit
	OnPlaysheet bool `json:"on_playsheet"`
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search catalog plays by name",
		Long: `Search every playbook for plays whose name contains the query, ignoring
case. Results keep catalog order and are capped by --limit (search.limit
in the config). Plays already on the playsheet are marked with +.

Examples:
  playsheet search mesh
  playsheet search "inside zone" --side offense
  playsheet search blitz --playbook eagles-def --limit 5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Side, "side", "", "only search offense or defense playbooks")
	cmd.Flags().StringVar(&opts.Playbook, "playbook", "", "only search one playbook id")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of results (default from config)")

	return cmd
}

func runSearch(opts *SearchOptions, query string, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	query = strings.TrimSpace(query)
	if minLen := a.cfg.Search.MinQueryLength; utf8.RuneCountInString(query) < minLen {
		return a.out.Fail(ExitCommandError, ErrCodeQueryShort,
			fmt.Sprintf("query %q is shorter than %d characters", query, minLen), nil)
	}

	searchOpts := search.Options{
		PlaybookID: opts.Playbook,
		Limit:      opts.Limit,
	}
	if searchOpts.Limit <= 0 {
		searchOpts.Limit = a.cfg.Search.Limit
	}
	if opts.Side != "" {
		if searchOpts.Side, err = domain.ParseSide(opts.Side); err != nil {
			return a.invalid("invalid --side", err)
		}
	}

	ctx := cmd.Context()
	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	onSheet, err := st.PlayIDs(ctx)
	if err != nil {
		return a.fail("failed to read playsheet", err)
	}

	hits := []SearchHit{}
	for hit := range search.New(cat).Search(query, searchOpts) {
		hits = append(hits, SearchHit{Hit: hit, OnPlaysheet: onSheet[hit.ID]})
	}
	a.logger.Debug("search complete", "query", query, "hits", len(hits))

	if a.out.Format == "json" {
		return a.out.Success(hits)
	}

	w := a.out.Writer
	if len(hits) == 0 {
		fmt.Fprintf(w, "No plays match %q.\n", query)
		return nil
	}
	for _, h := range hits {
		mark := " "
		if h.OnPlaysheet {
			mark = "+"
		}
		fmt.Fprintf(w, "%s %s (%s)  %s / %s / %s  %s\n",
			mark, h.Name, h.Type, h.PlaybookName, h.FormationGroupName, h.FormationName, h.ID)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/domain"
)

// PlaybooksOptions holds flags for the playbooks command.
type PlaybooksOptions struct {
	*RootOptions
	Side     string
	Category string
}

// PlaybookSummary is one row of the playbooks listing.
type PlaybookSummary struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Side     domain.Side      `json:"side"`
	Category catalog.Category `json:"category"`
	Plays    int              `json:"plays"`
}

// NewPlaybooksCommand creates the playbooks command.
func NewPlaybooksCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlaybooksOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "playbooks",
		Short: "List catalog playbooks",
		Long: `List the playbooks in the catalog, optionally filtered by side and
category.

Examples:
  playsheet playbooks
  playsheet playbooks --side defense
  playsheet playbooks --category alternate --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaybooks(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Side, "side", "", "offense or defense")
	cmd.Flags().StringVar(&opts.Category, "category", "", "team or alternate")

	return cmd
}

func runPlaybooks(opts *PlaybooksOptions, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var side domain.Side
	if opts.Side != "" {
		if side, err = domain.ParseSide(opts.Side); err != nil {
			return a.invalid("invalid --side", err)
		}
	}
	category := catalog.Category(opts.Category)
	if category != "" && category != catalog.CategoryTeam && category != catalog.CategoryAlternate {
		return a.invalid(fmt.Sprintf("invalid --category %q: must be team or alternate", opts.Category), nil)
	}

	cat, err := a.loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	summaries := []PlaybookSummary{}
	for _, pb := range cat.Filter(side, category) {
		summaries = append(summaries, PlaybookSummary{
			ID:       pb.ID,
			Name:     pb.Name,
			Side:     pb.Side,
			Category: pb.Category,
			Plays:    pb.PlayCount(),
		})
	}

	if a.out.Format == "json" {
		return a.out.Success(summaries)
	}

	w := a.out.Writer
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No playbooks found.")
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(w, "%-16s %-12s %-8s %-10s %d plays\n", s.ID, s.Name, s.Side, s.Category, s.Plays)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/sheet"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Side      string
	Situation string
	Sort      string
	Where     string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the playsheet",
		Long: `Show the playsheet for one side, filtered by situation tab and an
optional expression, sorted by formation (grouped), rating or date added.

Expressions see: id, play_id, playbook, formation_group, formation,
play_name, play_type, side, tags, notes, rating, rated, defensive,
added_at and now.

Examples:
  playsheet list
  playsheet list --side defense --situation 3rd-down
  playsheet list --sort rating --where 'rating >= 4 && "money" in tags'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Side, "side", string(domain.SideOffense), "offense, defense or all")
	cmd.Flags().StringVar(&opts.Situation, "situation", domain.SituationAll, "situation tab id or tag")
	cmd.Flags().StringVar(&opts.Sort, "sort", string(sheet.SortFormation), "formation, rating or added")
	cmd.Flags().StringVar(&opts.Where, "where", "", "filter expression")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	order, err := sheet.ParseSortOrder(opts.Sort)
	if err != nil {
		return a.invalid("invalid --sort", err)
	}
	viewOpts := sheet.Options{Situation: opts.Situation, Sort: order}
	if opts.Where != "" {
		if viewOpts.Where, err = sheet.CompileWhere(opts.Where); err != nil {
			return a.invalid("invalid --where", err)
		}
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	title := "Playsheet"
	var entries []domain.Entry
	if opts.Side == "all" {
		entries, err = st.QueryAll(ctx)
	} else {
		side, perr := domain.ParseSide(opts.Side)
		if perr != nil {
			return a.invalid("invalid --side", perr)
		}
		title = fmt.Sprintf("Playsheet (%s)", side)
		entries, err = st.QueryBySide(ctx, side)
	}
	if err != nil {
		return a.fail("failed to read playsheet", err)
	}

	view, err := sheet.Build(entries, viewOpts)
	if err != nil {
		return a.invalid("failed to evaluate --where", err)
	}

	if a.out.Format == "json" {
		return a.out.Success(view)
	}
	writeView(a.out.Writer, title, view)
	return nil
}

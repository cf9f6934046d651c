package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
)

// ContextSetOptions holds flags for context set.
type ContextSetOptions struct {
	*RootOptions
	Down      int
	Distance  int
	FieldSide string
	YardLine  int
}

// NewContextCommand creates the context command and its subcommands.
func NewContextCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show or change the game situation",
		Long: `The game context is the current down, distance and ball spot used while
planning. It defaults to 1st & 10 at OWN 25.`,
	}

	cmd.AddCommand(newContextShowCommand(rootOpts))
	cmd.AddCommand(newContextSetCommand(rootOpts))
	cmd.AddCommand(newContextClearCommand(rootOpts))

	return cmd
}

func newContextShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the game context",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			st, err := a.openStore()
			if err != nil {
				return err
			}
			return a.outputGameContext(st.GameContext(cmd.Context()))
		},
	}
}

func newContextSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ContextSetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change part of the game context",
		Long: `Change the given fields of the game context; the others keep their
current value.

Examples:
  playsheet context set --down 3 --distance 7
  playsheet context set --field opp --yard 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContextSet(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Down, "down", 0, "down (1-4)")
	cmd.Flags().IntVar(&opts.Distance, "distance", 0, "yards to go")
	cmd.Flags().StringVar(&opts.FieldSide, "field", "", "half of the field: own or opp")
	cmd.Flags().IntVar(&opts.YardLine, "yard", 0, "yard line (1-50)")

	return cmd
}

func runContextSet(opts *ContextSetOptions, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var patch domain.GameContextPatch
	flags := cmd.Flags()
	if flags.Changed("down") {
		patch.Down = &opts.Down
	}
	if flags.Changed("distance") {
		patch.Distance = &opts.Distance
	}
	if flags.Changed("field") {
		side := domain.FieldSide(opts.FieldSide)
		patch.FieldSide = &side
	}
	if flags.Changed("yard") {
		patch.YardLine = &opts.YardLine
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}
	g, err := st.UpdateGameContext(cmd.Context(), patch)
	if err != nil {
		return a.fail("failed to update game context", err)
	}
	return a.outputGameContext(g)
}

func newContextClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Reset the game context to 1st & 10 at OWN 25",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			st, err := a.openStore()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := st.ClearGameContext(ctx); err != nil {
				return a.fail("failed to clear game context", err)
			}
			return a.outputGameContext(st.GameContext(ctx))
		},
	}
}

// GameContextView is the JSON shape of the game context.
type GameContextView struct {
	domain.GameContext
	FieldPosition string `json:"field_position"`
}

func (a *app) outputGameContext(g domain.GameContext) error {
	if a.out.Format == "json" {
		return a.out.Success(GameContextView{GameContext: g, FieldPosition: g.FieldPosition()})
	}
	writeGameContext(a.out.Writer, g)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
)

// AdjustOptions holds flags for the adjust command.
type AdjustOptions struct {
	*RootOptions
	Shading    string
	Set        []string
	Formations []string
	Routes     []string
	QuickTip   string
	Clear      bool
}

// NewAdjustCommand creates the adjust command.
func NewAdjustCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AdjustOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "adjust <id>",
		Short: "Edit the pre-snap adjustments of a defensive entry",
		Long: `Edit the pre-snap adjustments saved with a defensive play. Unset
coaching fields keep their play-called defaults; --set takes the JSON key
of a coaching field (safety_depth, safety_width, cb_alignment, man_align,
dl_shift, lb_shift, dl_stunt, zone_drop, rpo_key, option_key,
coverage_shell).

Examples:
  playsheet adjust 4 --shading underneath --set dl_stunt=texas
  playsheet adjust 4 --good-vs-formation "Gun Bunch" --good-vs-route Mesh
  playsheet adjust 4 --clear`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjust(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Shading, "shading", "", "DB leverage: underneath, overtop, inside or outside (none clears)")
	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "coaching field as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Formations, "good-vs-formation", nil, "offensive formation the play handles well (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Routes, "good-vs-route", nil, "route concept the play handles well (repeatable)")
	cmd.Flags().StringVar(&opts.QuickTip, "tip", "", "one-line coaching reminder")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "remove all adjustments")

	return cmd
}

func runAdjust(opts *AdjustOptions, idArg string, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	id, err := a.parseID(idArg)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	entry, err := st.Get(ctx, id)
	if err != nil {
		return a.fail(fmt.Sprintf("failed to read entry %d", id), err)
	}
	if entry.Side != domain.SideDefense {
		return a.invalid(fmt.Sprintf("entry %d is not a defensive play", id), nil)
	}

	if opts.Clear {
		entry, err = st.Update(ctx, id, domain.Patch{ClearAdjustments: true})
		if err != nil {
			return a.fail(fmt.Sprintf("failed to clear adjustments of entry %d", id), err)
		}
		return a.outputAdjustments(entry)
	}

	adj := domain.DefaultAdjustments()
	if entry.DefensiveAdjustments != nil {
		adj = *entry.DefensiveAdjustments
	}
	if err := applyAdjustFlags(opts, cmd, &adj); err != nil {
		return a.invalid("invalid adjustment", err)
	}

	entry, err = st.UpdateDefensiveAdjustments(ctx, id, adj)
	if err != nil {
		return a.fail(fmt.Sprintf("failed to update adjustments of entry %d", id), err)
	}
	return a.outputAdjustments(entry)
}

// applyAdjustFlags merges the changed flags into adj.
func applyAdjustFlags(opts *AdjustOptions, cmd *cobra.Command, adj *domain.DefensiveAdjustments) error {
	if cmd.Flags().Changed("shading") {
		adj.Shading = opts.Shading
		if adj.Shading == "none" {
			adj.Shading = ""
		}
	}
	for _, kv := range opts.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: --set %q must be key=value", domain.ErrInvalidValue, kv)
		}
		if err := adj.Coaching.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	for _, f := range opts.Formations {
		adj.GoodAgainst.Formations = adj.GoodAgainst.Formations.Add(f)
	}
	for _, r := range opts.Routes {
		adj.GoodAgainst.Routes = adj.GoodAgainst.Routes.Add(r)
	}
	if cmd.Flags().Changed("tip") {
		adj.QuickTip = opts.QuickTip
	}
	return adj.Validate()
}

func (a *app) outputAdjustments(entry domain.Entry) error {
	if a.out.Format == "json" {
		return a.out.Success(entry)
	}

	w := a.out.Writer
	fmt.Fprintf(w, "Updated %s\n", entryLine(entry))
	adj := entry.DefensiveAdjustments
	if adj == nil {
		fmt.Fprintln(w, "  no adjustments")
		return nil
	}
	shading := adj.Shading
	if shading == "" {
		shading = "none"
	}
	c := adj.Coaching
	fmt.Fprintf(w, "  shading: %s\n", shading)
	fmt.Fprintf(w, "  safeties: depth %s, width %s\n", c.SafetyDepth, c.SafetyWidth)
	fmt.Fprintf(w, "  corners: %s, man align %s\n", c.CBAlignment, c.ManAlign)
	fmt.Fprintf(w, "  line: shift %s, stunt %s; linebackers: shift %s\n", c.DLShift, c.DLStunt, c.LBShift)
	fmt.Fprintf(w, "  zone drop %s, rpo key %s, option key %s, shell %s\n", c.ZoneDrop, c.RPOKey, c.OptionKey, c.CoverageShell)
	if adj.GoodAgainst.Formations.Len() > 0 || adj.GoodAgainst.Routes.Len() > 0 {
		fmt.Fprintf(w, "  good vs: %s\n", strings.Join(append(adj.GoodAgainst.Formations.Slice(), adj.GoodAgainst.Routes.Slice()...), ", "))
	}
	if adj.QuickTip != "" {
		fmt.Fprintf(w, "  tip: %s\n", adj.QuickTip)
	}
	return nil
}

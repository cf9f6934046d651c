package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/selection"
)

// NewTagCommand creates the tag command.
func NewTagCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <tag|situation> <id>...",
		Short: "Tag entries, as if dragged onto a situation tab",
		Long: `Tag one or more entries. The first argument is a situation tab id
(3rd-down, red-zone, goal-line, 2-min, money, 1st-down), a catalog tag
name or any free-text tag.

Several ids are tagged as one batch drag: each entry is tagged
independently and failures are reported without undoing the others.

Examples:
  playsheet tag red-zone 3
  playsheet tag "man beater" 3 4 7`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTag(rootOpts, args[0], args[1:], cmd)
		},
	}
	return cmd
}

func runTag(opts *RootOptions, targetArg string, idArgs []string, cmd *cobra.Command) error {
	a, err := newApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	target := resolveTarget(targetArg)
	if !target.Assignable() {
		return a.invalid(fmt.Sprintf("%q does not assign a tag", targetArg), nil)
	}
	ids, err := a.parseIDs(idArgs)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}

	eng := selection.New(st, selection.WithLogger(a.logger))
	if len(ids) > 1 {
		if err := eng.EnterSelectionMode(); err != nil {
			return a.fail("failed to start selection", err)
		}
		if err := eng.SelectAll(ids); err != nil {
			return a.fail("failed to mark entries", err)
		}
	}
	drag, err := eng.BeginDrag(ids[0])
	if err != nil {
		return a.fail("failed to start drag", err)
	}
	a.out.VerboseLog("gesture %s: dragging %v onto %s", drag.Token, drag.Payload, target.ID)

	res, err := eng.DropOn(cmd.Context(), target)
	if err != nil {
		var dropErr *selection.DropError
		if errors.As(err, &dropErr) && len(res.Applied) > 0 {
			a.logger.Warn("partial drop", "gesture", res.Token, "applied", res.Applied, "failed", res.Failed)
		}
		return a.fail(fmt.Sprintf("tagged %d of %d entries with %q", len(res.Applied), len(drag.Payload), target.Tag), err)
	}

	if a.out.Format == "json" {
		return a.out.SuccessWithTrace(res, res.Token)
	}
	fmt.Fprintf(a.out.Writer, "Tagged %d entr%s with %q\n", len(res.Applied), plural(len(res.Applied), "y", "ies"), target.Tag)
	return nil
}

// resolveTarget maps a tab id or tag name to a drop target; anything else
// is a free-text tag.
func resolveTarget(arg string) selection.Target {
	if t, ok := selection.DefaultTargets(arg); ok {
		return t
	}
	return selection.TagTarget(strings.TrimSpace(arg))
}

// resolveTag returns the tag a tab id or tag name stands for.
func resolveTag(arg string) string {
	if s, ok := domain.LookupSituation(arg); ok && s.Assignable() {
		return s.Tag
	}
	return strings.TrimSpace(arg)
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/playsheet/internal/domain"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Tags []string
}

// AddResult is the outcome of an add.
type AddResult struct {
	Entry     domain.Entry `json:"entry"`
	Duplicate bool         `json:"duplicate"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <play-id>",
		Short: "Add a catalog play to the playsheet",
		Long: `Add a catalog play to the playsheet. The play's playbook, formation and
type are copied from the catalog; the side comes from its playbook.

Adding a play that is already on the playsheet creates a second entry.

Examples:
  playsheet add eagles-off-gun-bunch-mesh-post
  playsheet add eagles-def-43-over-cover-3 --tag "3rd down" --tag blitz`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "tag to start with (repeatable)")

	return cmd
}

func runAdd(opts *AddOptions, playID string, cmd *cobra.Command) error {
	a, err := newApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	ref, ok := cat.Play(playID)
	if !ok {
		return a.out.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("play %q not found in catalog", playID), nil)
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}
	duplicate, err := st.ContainsPlay(ctx, playID)
	if err != nil {
		return a.fail("failed to read playsheet", err)
	}
	if duplicate {
		a.out.VerboseLog("%s is already on the playsheet; adding another entry", playID)
	}

	in := ref.NewEntry()
	in.Tags = domain.NewTagSet(opts.Tags...)
	id, err := st.Add(ctx, in, ref.Side)
	if err != nil {
		return a.fail("failed to add play", err)
	}
	entry, err := st.Get(ctx, id)
	if err != nil {
		return a.fail("failed to read added entry", err)
	}
	a.logger.Info("play added", "id", id, "play_id", playID, "side", ref.Side)

	if a.out.Format == "json" {
		return a.out.Success(AddResult{Entry: entry, Duplicate: duplicate})
	}
	fmt.Fprintf(a.out.Writer, "Added %s\n", entryLine(entry))
	return nil
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove entries from the playsheet",
		Long: `Remove entries by id. Removing an id that is not on the playsheet is not
an error.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runRemove(opts *RootOptions, args []string, cmd *cobra.Command) error {
	a, err := newApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ids, err := a.parseIDs(args)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := st.Remove(cmd.Context(), id); err != nil {
			return a.fail(fmt.Sprintf("failed to remove entry %d", id), err)
		}
	}

	if a.out.Format == "json" {
		return a.out.Success(map[string][]int64{"removed": ids})
	}
	fmt.Fprintf(a.out.Writer, "Removed %d entr%s\n", len(ids), plural(len(ids), "y", "ies"))
	return nil
}

// NewRateCommand creates the rate command.
func NewRateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <id> <0-5>",
		Short: "Rate an entry",
		Long: `Give an entry a star rating from 1 to 5. A rating of 0 clears it.

Examples:
  playsheet rate 3 5
  playsheet rate 3 0`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return a.invalid(fmt.Sprintf("invalid rating %q", args[1]), nil)
			}
			return a.patchEntry(cmd, args[0], domain.Patch{Rating: &rating})
		},
	}
	return cmd
}

// NewNoteCommand creates the note command.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <id> [text...]",
		Short: "Set or clear an entry's notes",
		Long: `Replace an entry's notes with the given text. With no text the notes are
cleared.

Example:
  playsheet note 3 "motion the slot before the snap"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			notes := strings.Join(args[1:], " ")
			return a.patchEntry(cmd, args[0], domain.Patch{Notes: &notes})
		},
	}
	return cmd
}

// NewUntagCommand creates the untag command.
func NewUntagCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untag <tag> <id>",
		Short: "Remove a tag from an entry",
		Args:  cobra.ExactArgs(2),
		Example: `  playsheet untag "red zone" 3
  playsheet untag red-zone 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := a.parseID(args[1])
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			entry, err := st.Get(cmd.Context(), id)
			if err != nil {
				return a.fail(fmt.Sprintf("failed to read entry %d", id), err)
			}
			tags := entry.Tags.Remove(resolveTag(args[0]))
			return a.patchEntry(cmd, args[1], domain.Patch{Tags: &tags})
		},
	}
	return cmd
}

// patchEntry applies patch to the entry named by idArg and prints it.
func (a *app) patchEntry(cmd *cobra.Command, idArg string, patch domain.Patch) error {
	id, err := a.parseID(idArg)
	if err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	entry, err := st.Update(cmd.Context(), id, patch)
	if err != nil {
		return a.fail(fmt.Sprintf("failed to update entry %d", id), err)
	}

	if a.out.Format == "json" {
		return a.out.Success(entry)
	}
	fmt.Fprintf(a.out.Writer, "Updated %s\n", entryLine(entry))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklist/internal/checklist"
	"github.com/idilsaglam/checklist/internal/completion"
	"github.com/idilsaglam/checklist/internal/ui"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item (text can be multiple words)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("usage: checklist add <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return usageErrorf("add: empty text")
			}
			st := app.cfg.Store()
			items, err := st.LoadItems()
			if err != nil {
				return err
			}
			l := checklist.New(items)
			l.Add(text)
			if err := st.SaveItems(l.Items()); err != nil {
				return err
			}
			app.log.Info("item added", "text", text)
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List active items",
		Args:    noArgs("ls"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.cfg.Store().LoadItems()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(items)))
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Complete the item at a 1-based index and archive it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("usage: checklist done <index>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usageErrorf("done: not a number: %s", args[0])
			}
			st := app.cfg.Store()
			items, err := st.LoadItems()
			if err != nil {
				return err
			}
			if n < 1 || n > len(items) {
				return usageErrorf("index out of range: have %d, got %d", len(items), n)
			}
			text := items[n-1]
			res, err := completion.Finisher{Store: st}.Finish(checklist.New(items), text)
			if err != nil {
				return err
			}
			if res.ArchiveErr != nil {
				app.log.Error("archive failed", "err", res.ArchiveErr)
				ui.Fail(cmd.ErrOrStderr(), res.ArchiveErr.Error())
			}
			app.log.Info("item completed", "text", text)
			ui.OK(cmd.OutOrStdout(), "done: "+text)
			return nil
		},
	}
}

func noArgs(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usageErrorf("%s: unexpected arguments: %s", name, strings.Join(args, " "))
		}
		return nil
	}
}

// listLines renders the items the way the window shows them, numbered for `done`.
func listLines(items []string) []string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s",
		t.Title.Render("CheckList"),
		t.Muted.Render(fmt.Sprintf("%d items", len(items))),
	)
	lines := []string{header, ""}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		idx := t.Muted.Render(fmt.Sprintf("%2d.", i+1))
		lines = append(lines, fmt.Sprintf("%s %s %s", idx, t.Muted.Render(t.BoxUnchecked), ui.Truncate(it, 80)))
	}
	lines = append(lines, "", t.Muted.Render(`Tip: add with checklist add "Buy milk"`))
	return lines
}

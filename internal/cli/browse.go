package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/journal"
	"github.com/faizmokh/jam/internal/ui"
)

func newBrowseCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [journal]",
		Short: "Browse the journal's days and intervals interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			loc, cfg, err := resolveSetup(cmd, args)
			if err != nil {
				return err
			}

			sections, err := parseJournal(loc, cfg.StrictOrder, now)
			if err != nil {
				return err
			}

			filtered := journal.FilterRange(sections, time.Time{}, time.Time{})
			if len(filtered) == 0 {
				return errors.New("no intervals found")
			}

			m := ui.NewModel(filtered, cfg.Rate)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	addSharedFlags(cmd)

	return cmd
}

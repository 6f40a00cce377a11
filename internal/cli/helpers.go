package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/config"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/journal"
)

// addSharedFlags registers the flags every journal-reading command accepts.
func addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("rate", 0, "Hourly rate used for billing lines")
	cmd.Flags().Float64("retainer", 0, "Already-paid monthly retainer deducted from gross")
	cmd.Flags().Bool("strict-order", true, "Reject date headers that do not advance chronologically")
	cmd.Flags().String("config", "", "Path to YAML defaults (default: config.yaml under the jam directory)")
}

// resolveSetup locates the journal, loads the YAML defaults, and layers any
// flags the user actually set on top.
func resolveSetup(cmd *cobra.Command, args []string) (*files.Locator, config.Config, error) {
	var journalArg string
	if len(args) > 0 {
		journalArg = args[0]
	}

	loc, err := files.NewLocator(journalArg)
	if err != nil {
		return nil, config.Config{}, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = loc.ConfigPath()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, config.Config{}, fmt.Errorf("config file: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	overrideFromFlags(cmd, &cfg)
	return loc, cfg, nil
}

// overrideFromFlags applies flags the user set explicitly. Flags a command
// does not define simply never report as changed.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rate") {
		cfg.Rate, _ = flags.GetFloat64("rate")
	}
	if flags.Changed("retainer") {
		cfg.Retainer, _ = flags.GetFloat64("retainer")
	}
	if flags.Changed("strict-order") {
		cfg.StrictOrder, _ = flags.GetBool("strict-order")
	}
	if flags.Changed("intervals") {
		cfg.ShowIntervals, _ = flags.GetBool("intervals")
	}
	if flags.Changed("daily-earnings") {
		cfg.ShowDailyEarnings, _ = flags.GetBool("daily-earnings")
	}
}

// resolveRange parses the optional positional start and end dates. The end
// defaults to today; an absent start stays zero so the caller can fill it
// from the earliest filtered section.
func resolveRange(args []string, now time.Time) (time.Time, time.Time, error) {
	var start time.Time
	if len(args) > 1 {
		parsed, err := parseDate(args[1])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %s", args[1])
		}
		start = parsed
	}

	end := midnight(now)
	if len(args) > 2 {
		parsed, err := parseDate(args[2])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %s", args[2])
		}
		end = parsed
	}

	if !start.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must be after start date")
	}
	return start, end, nil
}

// parseJournal reads and assembles the whole journal in one pass.
func parseJournal(loc *files.Locator, strictOrder bool, now time.Time) ([]journal.DaySection, error) {
	file, err := loc.OpenJournal()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	parser := journal.NewParser(journal.Options{Now: now, StrictOrder: strictOrder})
	return parser.Parse(file)
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

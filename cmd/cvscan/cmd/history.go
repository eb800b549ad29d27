package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mnb-0/cvscan/internal/adapters/bbolt"
	"github.com/Mnb-0/cvscan/internal/app"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List stored batch runs, or show one run in full",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

// openStore opens the run-history database from the config paths.
func openStore(cfg *app.Config) (*bbolt.Store, error) {
	s, err := bbolt.NewStore(cfg.Paths.Store)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return s, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		rec, err := store.LoadRun(args[0])
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("no run %q", args[0])
		}
		fmt.Print(formatRunRecord(rec))
		return nil
	}

	summaries, err := store.ListRuns()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("no stored runs")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%s%s%s  %s  %s%s%s  %d documents\n",
			colorCyan, s.ID, colorReset,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			colorBold, s.Position, colorReset,
			s.Documents)
	}
	return nil
}

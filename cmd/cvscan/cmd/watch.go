package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/Mnb-0/cvscan/internal/adapters/fsnotify"
	"github.com/Mnb-0/cvscan/internal/domain/batch"
)

var watchFlags struct {
	position string
	jobsDir  string
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-rank the batch whenever a CV document changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVarP(&watchFlags.position, "position", "p", "", "position title from the jobs dir")
	f.StringVar(&watchFlags.jobsDir, "jobs", "", "job descriptions directory (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kw, title, err := resolveKeywords(cfg, watchFlags.position, watchFlags.jobsDir, nil, nil, nil)
	if err != nil {
		return err
	}

	a, closeApp, err := newApp(cfg, log, true)
	if err != nil {
		return err
	}
	defer closeApp()

	w, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("watching %s for %s (Ctrl-C to stop)\n", args[0], title)
	return a.Watch(ctx, w, args[0], title, kw, func(res *batch.Result) {
		fmt.Print(formatBatch(title, res))
	})
}

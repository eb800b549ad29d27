package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var batchFlags struct {
	position  string
	jobsDir   string
	workers   int
	penalty   float64
	caseSense bool
	report    string
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every CV document in a directory and rank the candidates",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchFlags.position, "position", "p", "", "position title from the jobs dir")
	f.StringVar(&batchFlags.jobsDir, "jobs", "", "job descriptions directory (default from config)")
	f.IntVar(&batchFlags.workers, "workers", 0, "concurrent documents (0 = one per CPU)")
	f.Float64Var(&batchFlags.penalty, "penalty", -1, "mandatory-miss penalty percent (overrides config)")
	f.BoolVar(&batchFlags.caseSense, "case-sensitive", false, "match case-sensitively")
	f.StringVar(&batchFlags.report, "report", "", "report file path (overrides config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if batchFlags.workers != 0 {
		cfg.Batch.Workers = batchFlags.workers
	}
	if batchFlags.penalty >= 0 {
		cfg.Scoring.PenaltyPercent = batchFlags.penalty
	}
	if batchFlags.caseSense {
		cfg.Scoring.CaseSensitive = true
	}
	if batchFlags.report != "" {
		cfg.Paths.Report = batchFlags.report
	}

	kw, title, err := resolveKeywords(cfg, batchFlags.position, batchFlags.jobsDir, nil, nil, nil)
	if err != nil {
		return err
	}

	a, closeApp, err := newApp(cfg, log, true)
	if err != nil {
		return err
	}
	defer closeApp()

	res, rec, err := a.BatchDir(args[0], title, kw)
	if err != nil {
		return err
	}

	fmt.Print(formatBatch(title, res))
	fmt.Printf("%srun %s saved%s\n", colorGray, rec.ID, colorReset)
	return nil
}

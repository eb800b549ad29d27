package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeFlags struct {
	position  string
	jobsDir   string
	required  []string
	preferred []string
	tools     []string
	penalty   float64
	caseSense bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <document>",
	Short: "Score one CV document against a position",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeFlags.position, "position", "p", "", "position title from the jobs dir")
	f.StringVar(&analyzeFlags.jobsDir, "jobs", "", "job descriptions directory (default from config)")
	f.StringSliceVar(&analyzeFlags.required, "required", nil, "required keywords (overrides --position)")
	f.StringSliceVar(&analyzeFlags.preferred, "preferred", nil, "preferred keywords")
	f.StringSliceVar(&analyzeFlags.tools, "tools", nil, "tool keywords, matched but unscored")
	f.Float64Var(&analyzeFlags.penalty, "penalty", -1, "mandatory-miss penalty percent (overrides config)")
	f.BoolVar(&analyzeFlags.caseSense, "case-sensitive", false, "match case-sensitively")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeFlags.penalty >= 0 {
		cfg.Scoring.PenaltyPercent = analyzeFlags.penalty
	}
	if analyzeFlags.caseSense {
		cfg.Scoring.CaseSensitive = true
	}

	kw, title, err := resolveKeywords(cfg, analyzeFlags.position, analyzeFlags.jobsDir,
		analyzeFlags.required, analyzeFlags.preferred, analyzeFlags.tools)
	if err != nil {
		return err
	}

	a, closeApp, err := newApp(cfg, log, false)
	if err != nil {
		return err
	}
	defer closeApp()

	res, err := a.AnalyzeFile(args[0], kw)
	if err != nil {
		return err
	}

	fmt.Print(formatAnalysis(title, res))
	return nil
}

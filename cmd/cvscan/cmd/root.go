package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mnb-0/cvscan/internal/adapters/extract"
	"github.com/Mnb-0/cvscan/internal/adapters/jobconfig"
	"github.com/Mnb-0/cvscan/internal/app"
	"github.com/Mnb-0/cvscan/internal/domain/score"
)

var rootCmd = &cobra.Command{
	Use:   "cvscan",
	Short: "cvscan — CV keyword matching and relevance scoring",
	Long: "Scans CV documents for job keywords with three exact-match algorithms,\n" +
		"scores each candidate by weighted keyword coverage, and ranks the batch.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the CLI logger. CVSCAN_DEBUG=1 switches to the
// development config with debug level enabled.
func newLogger() *zap.Logger {
	if os.Getenv("CVSCAN_DEBUG") == "1" {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadConfig reads the --config file, or the defaults when unset.
func loadConfig() (*app.Config, error) {
	return app.LoadConfig(configPath)
}

// resolveKeywords builds the scoring classification either from the
// --position flag (looked up in the jobs dir) or from the explicit
// keyword list flags. Explicit flags win when both are given.
func resolveKeywords(cfg *app.Config, position, jobsDir string, required, preferred, tools []string) (score.Keywords, string, error) {
	if len(required)+len(preferred)+len(tools) > 0 {
		return score.NewKeywords(required, preferred, tools), "ad hoc", nil
	}

	if jobsDir == "" {
		jobsDir = cfg.Paths.JobsDir
	}
	positions, err := jobconfig.LoadDir(jobsDir)
	if err != nil {
		return score.Keywords{}, "", err
	}
	if position == "" {
		if len(positions) == 1 {
			p := positions[0]
			return p.Keywords(), p.Title, nil
		}
		return score.Keywords{}, "", fmt.Errorf("--position required: %d positions in %s", len(positions), jobsDir)
	}
	p, err := jobconfig.Find(positions, position)
	if err != nil {
		return score.Keywords{}, "", err
	}
	return p.Keywords(), p.Title, nil
}

// newApp wires the application with the PDF/DOCX extractor and an
// optional run-history store.
func newApp(cfg *app.Config, log *zap.Logger, store bool) (*app.App, func(), error) {
	ex := extract.New(log)
	if !store || cfg.Paths.Store == "" {
		return app.New(cfg, ex, nil, log), func() {}, nil
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.New(cfg, ex, s, log), func() { s.Close() }, nil
}

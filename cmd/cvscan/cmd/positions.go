package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mnb-0/cvscan/internal/adapters/jobconfig"
)

var positionsFlags struct {
	jobsDir string
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List the job positions available for scoring",
	RunE:  runPositions,
}

func init() {
	positionsCmd.Flags().StringVar(&positionsFlags.jobsDir, "jobs", "", "job descriptions directory (default from config)")
}

func runPositions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := positionsFlags.jobsDir
	if dir == "" {
		dir = cfg.Paths.JobsDir
	}

	positions, err := jobconfig.LoadDir(dir)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		fmt.Printf("no position files in %s\n", dir)
		return nil
	}

	for _, p := range positions {
		fmt.Printf("%s%s%s\n", colorBold, p.Title, colorReset)
		fmt.Printf("  required:  %s\n", strings.Join(p.RequiredSkills, ", "))
		fmt.Printf("  preferred: %s\n", strings.Join(p.PreferredSkills, ", "))
		if len(p.ToolsAndFrameworks) > 0 {
			fmt.Printf("  tools:     %s\n", strings.Join(p.ToolsAndFrameworks, ", "))
		}
	}
	return nil
}

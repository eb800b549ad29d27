// cvscan matches job keywords against CV documents and ranks candidates
// by a weighted relevance score.
package main

import (
	"os"

	"github.com/Mnb-0/cvscan/cmd/cvscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

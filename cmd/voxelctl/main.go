// Command voxelctl inspects voxelblocks artifacts: it dumps the header of a
// compressed chunk blob, and reports leaf counts of a sample octree chunk
// index built in memory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "voxelctl",
	Short:         "Inspect voxelblocks compressed chunks and sample octree indexes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(newDumpHeaderCmd())
	rootCmd.AddCommand(newOctreeStatsCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "voxelctl:", err)
		os.Exit(1)
	}
}

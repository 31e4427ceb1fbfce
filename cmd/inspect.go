package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarray/mkarray/internal/archive"
	"github.com/mkarray/mkarray/internal/ui"
)

// inspectCmd lists an archive written by mkarray.
var inspectCmd = &cobra.Command{
	Use:   "inspect <ARCHIVE.zip>",
	Short: "List archive members and verify every .deflate payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// runInspect prints one line per member. Members that are compressed by the
// zip container or carry another timestamp would break reproducible builds
// and are flagged; .deflate members that do not inflate fail the command.
func runInspect(path string) error {
	members, err := archive.Inspect(path)
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Archive: %s", path))

	failed := 0
	for _, m := range members {
		switch {
		case m.Err != nil:
			ui.PrintError(m.Name, fmt.Sprintf("%d bytes, inflate failed: %v", m.Size, m.Err))
			failed++
			continue
		case m.Method != 0:
			ui.PrintWarning(m.Name, fmt.Sprintf("%d bytes, zip method %d (expected stored)", m.Size, m.Method))
			continue
		case !m.Modified.Equal(archive.Epoch):
			ui.PrintWarning(m.Name, fmt.Sprintf("%d bytes, timestamp %s", m.Size, m.Modified.UTC().Format("2006-01-02 15:04:05")))
			continue
		}

		if m.Compressed() {
			ui.PrintSuccess(m.Name, fmt.Sprintf("%d bytes, inflates to %d", m.Size, m.Inflated))
		} else {
			ui.PrintSuccess(m.Name, fmt.Sprintf("%d bytes", m.Size))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d member(s) of %s failed to inflate", failed, path)
	}
	return nil
}

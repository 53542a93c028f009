package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, u.Header("flightdb"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, u.KeyValue("Version", Version))
		fmt.Fprintln(out, u.KeyValue("Git Commit", GitCommit))
		fmt.Fprintln(out, u.KeyValue("Built", BuildDate))
		fmt.Fprintln(out, u.KeyValue("Go Version", runtime.Version()))
		fmt.Fprintln(out, u.KeyValue("OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
		fmt.Fprintln(out, u.KeyValue("Stores", strings.Join(dialectNames(), ", ")))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
}

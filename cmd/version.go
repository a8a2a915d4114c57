package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version is injected via ldflags at build time
	Version = "dev"
	// Commit is injected via ldflags at build time
	Commit = "none"
	// BuildDate is injected via ldflags at build time
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Long:  `Displays the version of coup, its build metadata and the ruleset a table would use.`,
	Run: func(cmd *cobra.Command, args []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(Version)
			return
		}
		fmt.Printf("coup %s (%s, built %s)\n", Version, Commit, BuildDate)
		fmt.Printf("Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if doc, err := loadRuleset(); err == nil {
			fmt.Printf("Ruleset: %s (%d-%d players)\n", doc.Name, doc.Rules.MinPlayers, doc.Rules.MaxPlayers)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/suderio/coup/internal/session"

	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <transcript>",
	Short: "Load a transcript and print what happened",
	Long: `Reads a JSONL transcript written by 'play --transcript' and prints every
event in order. The game itself is not restored.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		events, err := session.ReadTranscript(args[0])
		if err != nil {
			fmt.Printf("Failed to read transcript: %v\n", err)
			os.Exit(1)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		for i, evt := range events {
			if verbose {
				fmt.Printf("%4d %-22s %s\n", i+1, evt.Type(), evt.Message())
				continue
			}
			fmt.Println(evt.Message())
		}
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolP("verbose", "v", false, "Number the events and show their types")
}

/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/suderio/coup/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replCmd = &cobra.Command{
	Use:     "play [player[:role]]...",
	Aliases: []string{"repl"},
	Short:   "Start an interactive table",
	Long: `Starts the read-eval-print loop for a table. Players given as arguments are
seated before the prompt opens; the rest join from the prompt.
Usage:
	coup play alice:governor bob:spy carol
	> start
	> tax
	> undo by: alice to: bob`,
	Run: func(cmd *cobra.Command, args []string) {
		transcript, _ := cmd.Flags().GetString("transcript")

		logger, err := newLogger()
		if err != nil {
			fmt.Printf("Failed to configure logging: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		game, err := newGame(logger)
		if err != nil {
			fmt.Printf("Failed to set up the table: %v\n", err)
			os.Exit(1)
		}

		var recorder session.Recorder
		if transcript != "" {
			tr, err := session.NewTranscript(transcript)
			if err != nil {
				fmt.Printf("Failed to open transcript: %v\n", err)
				os.Exit(1)
			}
			defer tr.Close()
			recorder = tr
		}

		app, err := session.NewSession(game, recorder, logger)
		if err != nil {
			fmt.Printf("Failed to bootstrap game session: %v\n", err)
			os.Exit(1)
		}

		var seated []string
		for _, arg := range args {
			events, err := app.Execute(joinCommand(arg))
			if err != nil {
				fmt.Printf("Cannot seat %s: %v\n", arg, err)
				os.Exit(1)
			}
			for _, evt := range events {
				seated = append(seated, evt.Message())
			}
		}

		if err := RunTUI(app, viper.GetString("ruleset"), seated); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringP("transcript", "t", "", "Append every game event to this JSONL file")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/suderio/coup/internal/data"
	"gopkg.in/yaml.v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [ruleset]",
	Short: "Print a ruleset as YAML",
	Long: `Resolves a ruleset the same way play does (rules_dir first, then the built-in
rulesets), overlays it onto the defaults and prints the result. Use it as the
starting point for a house ruleset.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := data.NewLoader(viper.GetStringSlice("rules_dir"))

		if list, _ := cmd.Flags().GetBool("list"); list {
			names, err := loader.ListRulesets()
			if err != nil {
				fmt.Printf("Failed to list rulesets: %v\n", err)
				os.Exit(1)
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return
		}

		name := viper.GetString("ruleset")
		if len(args) == 1 {
			name = args[0]
		}
		doc, err := loader.LoadRuleset(name)
		if err != nil {
			fmt.Printf("Failed to load ruleset: %v\n", err)
			os.Exit(1)
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(doc); err != nil {
			fmt.Printf("Failed to encode ruleset: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().BoolP("list", "l", false, "List the available rulesets instead")
}

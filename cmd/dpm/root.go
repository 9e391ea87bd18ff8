package main

import (
	"github.com/go-go-golems/design-pattern-menu/cmd/cmds"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carapace-sh/carapace"
	clay "github.com/go-go-golems/clay/pkg"
)

var rootCmd = &cobra.Command{
	Use:   "dpm",
	Short: "An interactive menu for exploring design patterns",
	Long: `Design Pattern Menu walks through the classic design patterns from the
terminal: pick a category, pick a pattern, then choose what to see.

Every pattern comes with help text, a runnable demonstration, a description,
a Mermaid flow chart and example Go code.

Examples:
  # Start the interactive menu
  STAGE=local dpm

  # List all patterns
  dpm list

  # Show outputs for one pattern without prompting
  STAGE=prod dpm show observer --output description,exec`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitLoggerFromViper()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmds.RunMenu(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	err := clay.InitViper("design-pattern-menu", rootCmd)
	if err != nil {
		output.PrintError("Failed to initialize configuration: %v", err)
		log.Fatal().Err(err).Msg("Failed to initialize Viper")
	}

	rootCmd.AddCommand(
		cmds.NewMenuCommand(),
		cmds.NewListCommand(),
		cmds.NewShowCommand(),
		cmds.NewVersionCommand(),
	)

	carapace.Gen(rootCmd)
}

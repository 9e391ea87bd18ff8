package cmds

import (
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/menu"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/spf13/cobra"
)

func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Browse design patterns interactively",
		Long: `Start the interactive design pattern menu.

Pick a category, then a pattern, then any combination of outputs:
  help          detailed help for the pattern
  exec          run a small demonstration
  description   what the pattern is for
  flow-chart    Mermaid flow chart of the participants
  example-code  example Go source

In the interactive picker the selected outputs are processed in menu order,
whatever order they were ticked in. Use "dpm show <pattern> -o ..." or pipe
answers on stdin to control the order.

Environment:
  STAGE    required, one of local, dev, prod
  VERSION  shown in the banner
  LANG     en or ja messages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunMenu(cmd)
		},
	}
}

// RunMenu prints the welcome banner and runs the root menu to completion
func RunMenu(cmd *cobra.Command) error {
	deps, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	return runMenu(cmd, deps)
}

func runMenu(cmd *cobra.Command, deps *menu.Deps) error {
	output.PrintBanner(deps.Out, deps.Messages.Welcome, deps.Messages.Title, deps.Config.DisplayVersion())
	return menu.NewRootCommand(deps).Run(cmd.Context())
}

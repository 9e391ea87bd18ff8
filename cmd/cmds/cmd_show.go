package cmds

import (
	"context"

	"github.com/carapace-sh/carapace"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/catalog"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/menu"
	"github.com/spf13/cobra"
)

func NewShowCommand() *cobra.Command {
	var outputs []string

	cmd := &cobra.Command{
		Use:   "show <pattern>",
		Short: "Show outputs for one pattern without prompting",
		Long: `Produce the outputs of a pattern menu directly.

Outputs are processed in the order given, exactly as if they had been
selected in the interactive menu: help and exec print immediately, the
others are printed together at the end.

Examples:
  dpm show adapter --output exec
  dpm show observer --output description,flow-chart
  dpm show builder -o help -o example-code`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := loadDeps(cmd)
			if err != nil {
				return err
			}
			return runShow(cmd.Context(), deps, args[0], outputs)
		},
	}

	var choices []string
	for _, a := range domain.OutputActions() {
		choices = append(choices, string(a))
	}

	cmd.Flags().StringSliceVarP(&outputs, "output", "o", []string{string(domain.OutputDescription)},
		"Outputs to show (help, exec, description, flow-chart, example-code)")

	carapace.Gen(cmd).PositionalCompletion(
		carapace.ActionValues(catalog.Default().Names()...),
	)
	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{
		"output": carapace.ActionValues(choices...).UniqueList(","),
	})

	return cmd
}

func runShow(ctx context.Context, deps *menu.Deps, name string, outputs []string) error {
	pattern, err := deps.Catalog.Get(name)
	if err != nil {
		return err
	}
	return menu.NewLeafCommand(deps, pattern).Handle(ctx, domain.MultiSelectAnswer("outputs", outputs...))
}

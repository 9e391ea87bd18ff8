package cmds

import (
	"fmt"
	"io"
	"os"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/config"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			return runVersion(os.Stdout, cfg)
		},
	}
}

func runVersion(w io.Writer, cfg *config.Config) error {
	_, err := fmt.Fprintf(w, "dpm %s (%s)\n", cfg.DisplayVersion(), cfg.Stage)
	return err
}

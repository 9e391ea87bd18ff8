package cmds

import (
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/config"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/menu"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// loadDeps resolves the configuration from the environment and builds the
// production dependencies for a menu session.
func loadDeps(cmd *cobra.Command) (*menu.Deps, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	applyStageLogLevel(cmd, cfg)

	deps, err := menu.NewDeps(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize menu")
	}
	return deps, nil
}

// applyStageLogLevel switches to debug logging on the local stage unless
// --log-level was given explicitly.
func applyStageLogLevel(cmd *cobra.Command, cfg *config.Config) {
	if !cfg.IsLocal() {
		return
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

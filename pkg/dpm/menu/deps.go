package menu

import (
	"io"
	"os"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/catalog"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/config"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/help"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/locale"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Deps contains all external dependencies of the menu commands
type Deps struct {
	Config   *config.Config
	Prompter ux.Prompter
	Logger   ux.Logger
	Help     *help.Store
	Catalog  *catalog.Catalog
	Messages *locale.Messages
	Render   output.Renderer
	Out      io.Writer
}

// NewDeps creates a dependencies container with production implementations.
// The huh prompter and markdown styling are used only on an interactive terminal.
func NewDeps(cfg *config.Config) (*Deps, error) {
	store, err := help.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load help content")
	}

	messages, err := locale.Load(cfg.Lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)

	var prompter ux.Prompter
	if interactive {
		prompter = ux.NewHuhPrompter()
	} else {
		prompter = ux.NewStdPrompter(os.Stdin, os.Stdout)
	}

	logger := ux.NewSessionLogger(uuid.NewString())
	patterns := catalog.Default()
	if missing := missingHelpTopics(store, patterns); len(missing) > 0 {
		logger.Warn("patterns without help", ux.Field("patterns", missing))
	}

	return &Deps{
		Config:   cfg,
		Prompter: prompter,
		Logger:   logger,
		Help:     store,
		Catalog:  patterns,
		Messages: messages,
		Render:   output.NewRenderer(isTerminal(os.Stdout)),
		Out:      os.Stdout,
	}, nil
}

// NewTestDeps creates dependencies suitable for testing, with English messages and plain rendering
func NewTestDeps(prompter ux.Prompter, logger ux.Logger, out io.Writer) (*Deps, error) {
	store, err := help.Load()
	if err != nil {
		return nil, err
	}

	messages, err := locale.Load("en")
	if err != nil {
		return nil, err
	}

	return &Deps{
		Config:   &config.Config{Stage: config.StageLocal, Version: "test"},
		Prompter: prompter,
		Logger:   logger,
		Help:     store,
		Catalog:  catalog.Default(),
		Messages: messages,
		Render:   output.PlainRenderer(),
		Out:      out,
	}, nil
}

// missingHelpTopics lists catalog patterns with no fine help entry, in catalog order
func missingHelpTopics(store *help.Store, c *catalog.Catalog) []string {
	topics := make(map[string]bool)
	for _, topic := range store.Topics(domain.GranularityFine) {
		topics[topic] = true
	}

	var missing []string
	for _, name := range c.Names() {
		if !topics[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package menu

import (
	"context"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
)

const patternField = "pattern"

type patternAnswer struct {
	Pattern string `mapstructure:"pattern"`
}

// RootCommand asks for a design pattern category
type RootCommand struct {
	deps     *Deps
	question domain.Question
}

func NewRootCommand(deps *Deps) *RootCommand {
	var choices []string
	for _, c := range domain.Categories() {
		choices = append(choices, string(c))
	}
	choices = append(choices, domain.HelpChoice)

	return &RootCommand{
		deps:     deps,
		question: domain.NewSelect(patternField, deps.Messages.RootPrompt, domain.HelpChoice, choices...),
	}
}

func (r *RootCommand) Question() domain.Question {
	return r.question
}

func (r *RootCommand) Run(ctx context.Context) error {
	if cfg := r.deps.Config; cfg != nil {
		r.deps.Logger.Debug("starting menu",
			ux.Field("stage", string(cfg.Stage)),
			ux.Field("version", cfg.DisplayVersion()))
	}
	return ask(ctx, r.deps, r)
}

// Handle runs the chosen category menu. "help" and unrecognized values show the overview.
func (r *RootCommand) Handle(ctx context.Context, answer domain.Answer) error {
	var a patternAnswer
	if err := answer.Decode(&a); err != nil {
		return err
	}

	category, ok := domain.ParseCategory(a.Pattern)
	if !ok {
		if a.Pattern != domain.HelpChoice {
			r.deps.Logger.Debug("unrecognized category, showing help", ux.Field("category", a.Pattern))
		}
		r.showHelp()
		return nil
	}

	r.deps.Logger.Debug("category selected", ux.Field("category", string(category)))
	return NewCategoryCommand(r.deps, category).Run(ctx)
}

func (r *RootCommand) showHelp() {
	r.deps.println(output.Section(domain.HelpChoice, r.deps.render(r.deps.Help.Overview())))
}

package menu

import (
	"context"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
)

// CategoryCommand asks for a pattern within one category
type CategoryCommand struct {
	deps     *Deps
	category domain.Category
	question domain.Question
}

func NewCategoryCommand(deps *Deps, category domain.Category) *CategoryCommand {
	choices := deps.Catalog.PatternNames(category)
	choices = append(choices, domain.HelpChoice)

	return &CategoryCommand{
		deps:     deps,
		category: category,
		question: domain.NewSelect(
			patternField,
			deps.Messages.CategoryMessage(category.Title()),
			domain.HelpChoice,
			choices...,
		),
	}
}

func (c *CategoryCommand) Question() domain.Question {
	return c.question
}

func (c *CategoryCommand) Run(ctx context.Context) error {
	return ask(ctx, c.deps, c)
}

// Handle runs the chosen pattern menu. Patterns of other categories, "help" and
// unrecognized values all show the category help.
func (c *CategoryCommand) Handle(ctx context.Context, answer domain.Answer) error {
	var a patternAnswer
	if err := answer.Decode(&a); err != nil {
		return err
	}

	pattern, ok := c.deps.Catalog.Lookup(a.Pattern)
	if !ok || pattern.Category != c.category {
		if a.Pattern != domain.HelpChoice {
			c.deps.Logger.Debug("unrecognized pattern, showing help",
				ux.Field("category", string(c.category)),
				ux.Field("pattern", a.Pattern))
		}
		c.showHelp()
		return nil
	}

	c.deps.Logger.Debug("pattern selected", ux.Field("pattern", pattern.Name))
	return NewLeafCommand(c.deps, pattern).Run(ctx)
}

func (c *CategoryCommand) showHelp() {
	text, ok := c.deps.Help.Lookup(domain.GranularityCoarse, string(c.category))
	if !ok {
		c.deps.Logger.Warn("no help entry",
			ux.Field("granularity", string(domain.GranularityCoarse)),
			ux.Field("topic", string(c.category)))
		c.deps.missingHelp(string(c.category))
		return
	}
	c.deps.println(output.Section(domain.HelpChoice, c.deps.render(text)))
}

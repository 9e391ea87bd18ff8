// Package menu implements the three-level interactive menu.
//
// The root menu picks a category, a category menu picks a pattern and a
// pattern menu picks which outputs to show. Each level owns one question,
// asks it through the injected Prompter and handles the answer. Child menus
// are built on demand inside Handle and discarded once they return.
package menu

import (
	"context"
	"fmt"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/pkg/errors"
)

// Command is one node of the menu tree
type Command interface {
	Question() domain.Question
	Run(ctx context.Context) error
	Handle(ctx context.Context, answer domain.Answer) error
}

// ask prompts the command's question and hands the answer to Handle.
// Prompt failures propagate unchanged.
func ask(ctx context.Context, deps *Deps, c Command) error {
	q := c.Question()
	answer, err := deps.Prompter.Prompt(ctx, q)
	if err != nil {
		return errors.Wrapf(err, "failed to collect answer for %q", q.Message)
	}
	deps.Logger.Debug("answer received", ux.Field("question", q.Name), ux.Field("answer", answer))
	return c.Handle(ctx, answer)
}

func (d *Deps) missingHelp(topic string) {
	output.FprintWarning(d.Out, "%s", d.Messages.HelpMissingMessage(topic))
}

func (d *Deps) println(s string) {
	fmt.Fprintln(d.Out, s)
}

// render falls back to the raw markdown when rendering fails
func (d *Deps) render(markdown string) string {
	if d.Render == nil {
		return markdown
	}
	out, err := d.Render(markdown)
	if err != nil {
		d.Logger.Warn("failed to render markdown", ux.Field("error", err.Error()))
		return markdown
	}
	return out
}

package menu

import (
	"context"
	"fmt"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/catalog"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
)

const outputsField = "outputs"

type outputsAnswer struct {
	Outputs []string `mapstructure:"outputs"`
}

// LeafCommand asks which outputs to show for one pattern.
// help and exec print immediately, the remaining outputs are buffered and
// printed together once every selection has been processed.
type LeafCommand struct {
	deps     *Deps
	pattern  catalog.Pattern
	question domain.Question
}

func NewLeafCommand(deps *Deps, pattern catalog.Pattern) *LeafCommand {
	var choices []string
	for _, a := range domain.OutputActions() {
		choices = append(choices, string(a))
	}

	return &LeafCommand{
		deps:     deps,
		pattern:  pattern,
		question: domain.NewMultiSelect(outputsField, deps.Messages.LeafMessage(pattern.Name), choices...),
	}
}

func (l *LeafCommand) Question() domain.Question {
	return l.question
}

func (l *LeafCommand) Run(ctx context.Context) error {
	return ask(ctx, l.deps, l)
}

func (l *LeafCommand) Handle(ctx context.Context, answer domain.Answer) error {
	var a outputsAnswer
	if err := answer.Decode(&a); err != nil {
		return err
	}

	buffer := l.collect(a.Outputs)
	for _, entry := range buffer {
		l.deps.println(entry)
	}
	return nil
}

// collect processes selections in order and returns the deferred entries
func (l *LeafCommand) collect(outputs []string) []string {
	var buffer []string

	for _, o := range outputs {
		switch domain.OutputAction(o) {
		case domain.OutputHelp:
			l.showHelp()
		case domain.OutputExec:
			l.exec()
		case domain.OutputDescription:
			buffer = append(buffer, output.Section(o, l.deps.render(l.pattern.Description)))
		case domain.OutputFlowChart:
			buffer = append(buffer, output.Section(o, l.pattern.FlowChart()))
		case domain.OutputExampleCode:
			buffer = append(buffer, output.Section(o, l.pattern.Example))
		default:
			l.deps.Logger.Warn("ignoring unknown output",
				ux.Field("pattern", l.pattern.Name),
				ux.Field("output", o))
		}
	}

	l.deps.Logger.Debug("outputs collected",
		ux.Field("pattern", l.pattern.Name),
		ux.Field("selected", len(outputs)),
		ux.Field("buffered", len(buffer)))
	return buffer
}

func (l *LeafCommand) showHelp() {
	text, ok := l.deps.Help.Lookup(domain.GranularityFine, l.pattern.Name)
	if !ok {
		l.deps.Logger.Warn("no help entry",
			ux.Field("granularity", string(domain.GranularityFine)),
			ux.Field("topic", l.pattern.Name))
		l.deps.missingHelp(l.pattern.Name)
		return
	}
	l.deps.println(output.Section(string(domain.OutputHelp), l.deps.render(text)))
}

func (l *LeafCommand) exec() {
	if l.pattern.Demo == nil {
		l.deps.Logger.Warn("pattern has no demonstration", ux.Field("pattern", l.pattern.Name))
		return
	}
	l.deps.Logger.Debug("running demonstration", ux.Field("pattern", l.pattern.Name))
	fmt.Fprintln(l.deps.Out, output.Badge(string(domain.OutputExec)))
	l.pattern.Demo(l.deps.Out)
}

package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/help"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/ux"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPrompter answers questions from a script and records what was asked
type MockPrompter struct {
	answers   []domain.Answer
	questions []domain.Question
}

func NewMockPrompter(answers ...domain.Answer) *MockPrompter {
	return &MockPrompter{answers: answers}
}

func (m *MockPrompter) Prompt(ctx context.Context, q domain.Question) (domain.Answer, error) {
	m.questions = append(m.questions, q)
	if len(m.answers) == 0 {
		return nil, ux.ErrInputClosed
	}
	a := m.answers[0]
	m.answers = m.answers[1:]
	return a, nil
}

// MockLogger implements ux.Logger for testing
type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Info(msg string, fields ...ux.LogField) {
	m.messages = append(m.messages, "INFO: "+msg)
}

func (m *MockLogger) Warn(msg string, fields ...ux.LogField) {
	m.messages = append(m.messages, "WARN: "+msg)
}

func (m *MockLogger) Error(msg string, fields ...ux.LogField) {
	m.messages = append(m.messages, "ERROR: "+msg)
}

func (m *MockLogger) Debug(msg string, fields ...ux.LogField) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func newTestDeps(t *testing.T, answers ...domain.Answer) (*Deps, *MockPrompter, *MockLogger, *bytes.Buffer) {
	t.Helper()
	prompter := NewMockPrompter(answers...)
	logger := NewMockLogger()
	var out bytes.Buffer
	deps, err := NewTestDeps(prompter, logger, &out)
	require.NoError(t, err)
	return deps, prompter, logger, &out
}

func pattern(name string) domain.Answer {
	return domain.SelectAnswer("pattern", name)
}

func outputs(values ...string) domain.Answer {
	return domain.MultiSelectAnswer("outputs", values...)
}

func coarseHelp(t *testing.T, deps *Deps, c domain.Category) string {
	t.Helper()
	text, ok := deps.Help.Lookup(domain.GranularityCoarse, string(c))
	require.True(t, ok)
	return text
}

func TestRootCommand_Question(t *testing.T) {
	deps, _, _, _ := newTestDeps(t)

	q := NewRootCommand(deps).Question()
	assert.Equal(t, domain.SingleSelect, q.Kind)
	assert.Equal(t, "pattern", q.Name)
	assert.Equal(t, []string{"creational", "structural", "behavioral", "help"}, q.Choices)
	assert.Equal(t, "help", q.Default)
	assert.NoError(t, q.Validate())
}

func TestRootCommand_HelpShowsOverviewOnly(t *testing.T) {
	deps, prompter, _, out := newTestDeps(t, pattern("help"))

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	assert.Len(t, prompter.questions, 1, "no category menu should be asked")
	assert.Contains(t, out.String(), deps.Help.Overview())
	for _, c := range domain.Categories() {
		assert.NotContains(t, out.String(), coarseHelp(t, deps, c))
	}
}

func TestRootCommand_UnrecognizedShowsOverview(t *testing.T) {
	deps, prompter, logger, out := newTestDeps(t, pattern("Creational"))

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	assert.Len(t, prompter.questions, 1)
	assert.Contains(t, out.String(), deps.Help.Overview())
	assert.Contains(t, logger.messages, "DEBUG: unrecognized category, showing help")
}

func TestCategoryCommand_Question(t *testing.T) {
	deps, _, _, _ := newTestDeps(t)

	tests := []struct {
		category domain.Category
		choices  []string
	}{
		{
			category: domain.CategoryCreational,
			choices:  []string{"factory-method", "abstract-factory", "builder", "prototype", "help"},
		},
		{
			category: domain.CategoryStructural,
			choices:  []string{"adapter", "bridge", "composite", "decorator", "facade", "flyweight", "proxy", "help"},
		},
		{
			category: domain.CategoryBehavioral,
			choices: []string{
				"chain-of-responsibility", "command", "interpreter", "iterator", "mediator", "memento",
				"observer", "state", "strategy", "template-method", "visitor", "help",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			q := NewCategoryCommand(deps, tt.category).Question()
			assert.Equal(t, domain.SingleSelect, q.Kind)
			assert.Equal(t, tt.choices, q.Choices)
			assert.Equal(t, "help", q.Default)
			assert.Contains(t, q.Message, tt.category.Title())
		})
	}
}

func TestCategoryCommand_HelpFallback(t *testing.T) {
	for _, c := range domain.Categories() {
		for _, answer := range []string{"help", "not-a-pattern"} {
			t.Run(string(c)+"/"+answer, func(t *testing.T) {
				deps, prompter, _, out := newTestDeps(t, pattern(answer))

				require.NoError(t, NewCategoryCommand(deps, c).Run(context.Background()))

				assert.Len(t, prompter.questions, 1, "no pattern menu should be asked")
				assert.Contains(t, out.String(), coarseHelp(t, deps, c))
			})
		}
	}
}

func TestCategoryCommand_PatternFromOtherCategoryShowsHelp(t *testing.T) {
	deps, prompter, _, out := newTestDeps(t, pattern("adapter"))

	require.NoError(t, NewCategoryCommand(deps, domain.CategoryCreational).Run(context.Background()))

	assert.Len(t, prompter.questions, 1)
	assert.Contains(t, out.String(), coarseHelp(t, deps, domain.CategoryCreational))
}

func TestRootToCategoryHelp(t *testing.T) {
	deps, prompter, _, out := newTestDeps(t, pattern("creational"), pattern("help"))

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	require.Len(t, prompter.questions, 2)
	assert.Equal(t,
		[]string{"factory-method", "abstract-factory", "builder", "prototype", "help"},
		prompter.questions[1].Choices)
	assert.Contains(t, out.String(), coarseHelp(t, deps, domain.CategoryCreational))
	assert.NotContains(t, out.String(), deps.Help.Overview())
}

func TestLeafCommand_Question(t *testing.T) {
	deps, _, _, _ := newTestDeps(t)
	p, err := deps.Catalog.Get("builder")
	require.NoError(t, err)

	q := NewLeafCommand(deps, p).Question()
	assert.Equal(t, domain.MultiSelect, q.Kind)
	assert.Equal(t, "outputs", q.Name)
	assert.Equal(t, []string{"help", "exec", "description", "flow-chart", "example-code"}, q.Choices)
	assert.Empty(t, q.Default)
	assert.Contains(t, q.Message, "builder")
}

func TestEndToEnd_CreationalFactoryMethodDescriptionAndExample(t *testing.T) {
	deps, prompter, _, out := newTestDeps(t,
		pattern("creational"),
		pattern("factory-method"),
		outputs("description", "example-code"),
	)

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	p, err := deps.Catalog.Get("factory-method")
	require.NoError(t, err)

	assert.Len(t, prompter.questions, 3)
	want := output.Section("description", p.Description) + "\n" +
		output.Section("example-code", p.Example) + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "[description]"))
	assert.Equal(t, 1, strings.Count(out.String(), "[example-code]"))
}

func TestEndToEnd_StructuralAdapterExec(t *testing.T) {
	deps, prompter, _, out := newTestDeps(t,
		pattern("structural"),
		pattern("adapter"),
		outputs("exec"),
	)

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	assert.Len(t, prompter.questions, 3)
	assert.Equal(t, 1, strings.Count(out.String(), "Printing using old method: Hello, World!"))
	assert.NotContains(t, out.String(), "[description]")
	assert.NotContains(t, out.String(), "[flow-chart]")
	assert.NotContains(t, out.String(), "[example-code]")
}

func TestEndToEnd_BehavioralObserverAllOutputs(t *testing.T) {
	deps, _, _, out := newTestDeps(t,
		pattern("behavioral"),
		pattern("observer"),
		outputs("help", "exec", "description", "flow-chart", "example-code"),
	)

	require.NoError(t, NewRootCommand(deps).Run(context.Background()))

	p, err := deps.Catalog.Get("observer")
	require.NoError(t, err)
	fine, ok := deps.Help.Lookup(domain.GranularityFine, "observer")
	require.True(t, ok)

	s := out.String()
	assert.Contains(t, s, fine)
	assert.Contains(t, s, p.Description)
	assert.Contains(t, s, p.FlowChart())
	assert.Contains(t, s, p.Example)
}

func TestLeafCommand_BufferedOutputsKeepSelectionOrder(t *testing.T) {
	deps, _, _, out := newTestDeps(t)
	p, err := deps.Catalog.Get("builder")
	require.NoError(t, err)

	err = NewLeafCommand(deps, p).Handle(context.Background(), outputs("example-code", "description", "flow-chart"))
	require.NoError(t, err)

	s := out.String()
	example := strings.Index(s, "[example-code]")
	description := strings.Index(s, "[description]")
	flow := strings.Index(s, "[flow-chart]")
	require.True(t, example >= 0 && description >= 0 && flow >= 0)
	assert.Less(t, example, description)
	assert.Less(t, description, flow)
}

func TestLeafCommand_HelpPrintsBeforeBufferedOutputs(t *testing.T) {
	deps, _, _, out := newTestDeps(t)
	p, err := deps.Catalog.Get("builder")
	require.NoError(t, err)

	err = NewLeafCommand(deps, p).Handle(context.Background(), outputs("description", "help"))
	require.NoError(t, err)

	fine, ok := deps.Help.Lookup(domain.GranularityFine, "builder")
	require.True(t, ok)

	s := out.String()
	require.Contains(t, s, fine)
	assert.Less(t, strings.Index(s, fine), strings.Index(s, "[description]"))
}

func TestLeafCommand_HelpAndExecAreNotBuffered(t *testing.T) {
	deps, _, _, out := newTestDeps(t)
	p, err := deps.Catalog.Get("prototype")
	require.NoError(t, err)

	buffer := NewLeafCommand(deps, p).collect([]string{"help", "exec"})

	assert.Empty(t, buffer)
	assert.Equal(t, 1, strings.Count(out.String(), "Original Object's Data: Initial Data"))
}

func TestLeafCommand_EmptySelectionPrintsNothing(t *testing.T) {
	deps, _, _, out := newTestDeps(t)
	p, err := deps.Catalog.Get("facade")
	require.NoError(t, err)

	require.NoError(t, NewLeafCommand(deps, p).Handle(context.Background(), outputs()))
	assert.Empty(t, out.String())
}

func TestLeafCommand_UnknownOutputIsSkipped(t *testing.T) {
	deps, _, logger, out := newTestDeps(t)
	p, err := deps.Catalog.Get("facade")
	require.NoError(t, err)

	buffer := NewLeafCommand(deps, p).collect([]string{"sound", "description"})

	assert.Len(t, buffer, 1)
	assert.Empty(t, out.String())
	assert.Contains(t, logger.messages, "WARN: ignoring unknown output")
}

func TestLeafCommand_MissingFineHelpIsLogged(t *testing.T) {
	deps, _, logger, out := newTestDeps(t)
	store, err := help.Parse([]byte("overview: hello\ncoarse:\n  structural: shapes\nfine: {}\n"))
	require.NoError(t, err)
	deps.Help = store

	p, err := deps.Catalog.Get("adapter")
	require.NoError(t, err)

	require.NoError(t, NewLeafCommand(deps, p).Handle(context.Background(), outputs("help")))

	assert.Contains(t, logger.messages, "WARN: no help entry")
	assert.Contains(t, out.String(), deps.Messages.HelpMissingMessage("adapter"))
	assert.NotContains(t, out.String(), "[help]")
}

func TestCategoryCommand_MissingCoarseHelpIsLogged(t *testing.T) {
	deps, _, logger, out := newTestDeps(t, pattern("help"))
	store, err := help.Parse([]byte("overview: hello\ncoarse:\n  structural: shapes\nfine: {}\n"))
	require.NoError(t, err)
	deps.Help = store

	require.NoError(t, NewCategoryCommand(deps, domain.CategoryBehavioral).Run(context.Background()))

	assert.Contains(t, logger.messages, "WARN: no help entry")
	assert.Contains(t, out.String(), deps.Messages.HelpMissingMessage("behavioral"))
	assert.NotContains(t, out.String(), "[help]")
}

func TestMissingHelpTopics(t *testing.T) {
	deps, _, _, _ := newTestDeps(t)
	assert.Empty(t, missingHelpTopics(deps.Help, deps.Catalog))

	store, err := help.Parse([]byte("overview: hello\nfine:\n  proxy: stand-in\n"))
	require.NoError(t, err)

	missing := missingHelpTopics(store, deps.Catalog)
	assert.Len(t, missing, len(deps.Catalog.Names())-1)
	assert.NotContains(t, missing, "proxy")
	assert.Equal(t, "factory-method", missing[0])
}

func TestRun_PromptErrorPropagates(t *testing.T) {
	deps, _, _, out := newTestDeps(t)
	boom := errors.New("terminal gone")
	asked := 0
	deps.Prompter = ux.PrompterFunc(func(ctx context.Context, q domain.Question) (domain.Answer, error) {
		asked++
		return nil, boom
	})

	err := NewRootCommand(deps).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, asked)
	assert.Empty(t, out.String())
}

func TestRun_InputClosedMidMenu(t *testing.T) {
	deps, prompter, _, _ := newTestDeps(t, pattern("creational"))

	err := NewRootCommand(deps).Run(context.Background())
	assert.True(t, errors.Is(err, ux.ErrInputClosed))
	assert.Len(t, prompter.questions, 2)
}

func TestCatalogPatternsAreReachable(t *testing.T) {
	deps, _, _, _ := newTestDeps(t)

	for _, name := range deps.Catalog.Names() {
		p, ok := deps.Catalog.Lookup(name)
		require.True(t, ok)

		d, prompter, _, out := newTestDeps(t, pattern(string(p.Category)), pattern(p.Name), outputs("exec"))
		require.NoError(t, NewRootCommand(d).Run(context.Background()), name)
		assert.Len(t, prompter.questions, 3, name)
		assert.NotEmpty(t, out.String(), name)
	}
}

var _ ux.Prompter = (*MockPrompter)(nil)
var _ Command = (*LeafCommand)(nil)

package domain

import (
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

var (
	ErrNoChoices           = errors.New("question has no choices")
	ErrDefaultNotInChoices = errors.New("question default is not one of its choices")
)

// QuestionKind discriminates single from multi selection
type QuestionKind int

const (
	SingleSelect QuestionKind = iota
	MultiSelect
)

func (k QuestionKind) String() string {
	switch k {
	case SingleSelect:
		return "single-select"
	case MultiSelect:
		return "multi-select"
	default:
		return "unknown"
	}
}

// Question describes one menu prompt. Choices keep their order when rendered.
type Question struct {
	Kind    QuestionKind
	Name    string
	Message string
	Default string
	Choices []string
}

// NewSelect builds a single-select question
func NewSelect(name, message, def string, choices ...string) Question {
	return Question{
		Kind:    SingleSelect,
		Name:    name,
		Message: message,
		Default: def,
		Choices: slices.Clone(choices),
	}
}

// NewMultiSelect builds a multi-select question with no preselected choice
func NewMultiSelect(name, message string, choices ...string) Question {
	return Question{
		Kind:    MultiSelect,
		Name:    name,
		Message: message,
		Choices: slices.Clone(choices),
	}
}

// Validate checks that choices are not empty and that a single-select default is a choice
func (q Question) Validate() error {
	if len(q.Choices) == 0 {
		return errors.Wrapf(ErrNoChoices, "question %q", q.Name)
	}
	if q.Kind == SingleSelect && q.Default != "" && !slices.Contains(q.Choices, q.Default) {
		return errors.Wrapf(ErrDefaultNotInChoices, "question %q default %q", q.Name, q.Default)
	}
	return nil
}

// Answer maps a question name to a chosen label (single-select) or
// an ordered list of chosen labels (multi-select).
type Answer map[string]interface{}

// SelectAnswer builds the answer to a single-select question
func SelectAnswer(name, value string) Answer {
	return Answer{name: value}
}

// MultiSelectAnswer builds the answer to a multi-select question
func MultiSelectAnswer(name string, values ...string) Answer {
	return Answer{name: slices.Clone(values)}
}

// Decode copies the answer into a struct tagged with `mapstructure:"<question name>"`.
// A single value decodes into a slice of one element when the target is a slice.
func (a Answer) Decode(target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create answer decoder")
	}
	if err := decoder.Decode(map[string]interface{}(a)); err != nil {
		return errors.Wrap(err, "failed to decode answer")
	}
	return nil
}

package ux

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/pkg/errors"
)

// HuhPrompter implements Prompter using charmbracelet/huh
type HuhPrompter struct{}

func NewHuhPrompter() Prompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Prompt(ctx context.Context, q domain.Question) (domain.Answer, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	switch q.Kind {
	case domain.MultiSelect:
		values, err := p.multiSelect(ctx, q)
		if err != nil {
			return nil, err
		}
		return domain.MultiSelectAnswer(q.Name, values...), nil
	default:
		value, err := p.selectOne(ctx, q)
		if err != nil {
			return nil, err
		}
		return domain.SelectAnswer(q.Name, value), nil
	}
}

func (p *HuhPrompter) selectOne(ctx context.Context, q domain.Question) (string, error) {
	result := q.Default

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Message).
				Options(huh.NewOptions(q.Choices...)...).
				Value(&result),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "failed to prompt %q", q.Name)
	}

	return result, nil
}

// multiSelect returns the chosen values in menu order; huh does not track selection order
func (p *HuhPrompter) multiSelect(ctx context.Context, q domain.Question) ([]string, error) {
	var result []string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(q.Message).
				Options(huh.NewOptions(q.Choices...)...).
				Value(&result),
		),
	).RunWithContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prompt %q", q.Name)
	}

	return result, nil
}

package ux

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/output"
	"github.com/pkg/errors"
)

// StdPrompter implements Prompter over a line-oriented reader, for when stdin is not a terminal.
// Multi-select answers keep the order in which the numbers were typed.
type StdPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdPrompter(in io.Reader, out io.Writer) Prompter {
	return &StdPrompter{in: bufio.NewReader(in), out: out}
}

func (p *StdPrompter) Prompt(ctx context.Context, q domain.Question) (domain.Answer, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	p.printQuestion(q)

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

func (p *StdPrompter) printQuestion(q domain.Question) {
	fmt.Fprintln(p.out, output.Rule())
	fmt.Fprintln(p.out, q.Message)
	for i, choice := range q.Choices {
		marker := ""
		if q.Kind == domain.SingleSelect && choice == q.Default {
			marker = " (default)"
		}
		fmt.Fprintf(p.out, "%d. %s%s\n", i+1, choice, marker)
	}
}

func (p *StdPrompter) selectOne(ctx context.Context, q domain.Question) (string, error) {
	for {
		fmt.Fprint(p.out, "Enter your choice (number): ")
		input, err := p.readLine(ctx)
		if err != nil {
			return "", errors.Wrapf(err, "failed to prompt %q", q.Name)
		}

		if input == "" {
			if q.Default != "" {
				return q.Default, nil
			}
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}

		choice, ok := resolveChoice(q.Choices, input)
		if !ok {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(q.Choices))
			continue
		}
		return choice, nil
	}
}

func (p *StdPrompter) multiSelect(ctx context.Context, q domain.Question) ([]string, error) {
	for {
		fmt.Fprint(p.out, "Enter your choices (numbers separated by commas, empty for none): ")
		input, err := p.readLine(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to prompt %q", q.Name)
		}

		tokens := strings.FieldsFunc(input, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		var result []string
		valid := true
		for _, token := range tokens {
			choice, ok := resolveChoice(q.Choices, token)
			if !ok {
				fmt.Fprintf(p.out, "Invalid choice %q, please enter numbers between 1 and %d.\n", token, len(q.Choices))
				valid = false
				break
			}
			if !slices.Contains(result, choice) {
				result = append(result, choice)
			}
		}
		if valid {
			return result, nil
		}
	}
}

func (p *StdPrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", ErrInputClosed
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "failed to read input")
		}
	}

	return strings.TrimSpace(line), nil
}

// resolveChoice accepts a 1-based index or the literal choice label
func resolveChoice(choices []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(choices) {
			return "", false
		}
		return choices[n-1], true
	}
	if slices.Contains(choices, input) {
		return input, true
	}
	return "", false
}

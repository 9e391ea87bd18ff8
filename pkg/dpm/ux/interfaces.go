package ux

import (
	"context"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/pkg/errors"
)

// ErrInputClosed is returned when the input stream ends before a question is answered
var ErrInputClosed = errors.New("input stream closed")

// Prompter turns a question into an answer keyed by the question's name
type Prompter interface {
	Prompt(ctx context.Context, q domain.Question) (domain.Answer, error)
}

// PrompterFunc adapts a plain function to Prompter
type PrompterFunc func(ctx context.Context, q domain.Question) (domain.Answer, error)

func (f PrompterFunc) Prompt(ctx context.Context, q domain.Question) (domain.Answer, error) {
	return f(ctx, q)
}

// Logger abstracts logging for structured output and testing
type Logger interface {
	Info(msg string, fields ...LogField)
	Warn(msg string, fields ...LogField)
	Error(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
}

// LogField represents a structured log field
type LogField struct {
	Key   string
	Value interface{}
}

func Field(key string, value interface{}) LogField {
	return LogField{Key: key, Value: value}
}

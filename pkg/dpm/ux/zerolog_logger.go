package ux

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ZerologLogger implements Logger using zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

func NewZerologLogger() Logger {
	return &ZerologLogger{logger: log.Logger}
}

func NewZerologLoggerWithLogger(logger zerolog.Logger) Logger {
	return &ZerologLogger{logger: logger}
}

// NewSessionLogger tags every event of one menu session with its id
func NewSessionLogger(sessionID string) Logger {
	return &ZerologLogger{logger: log.Logger.With().Str("session", sessionID).Logger()}
}

func (l *ZerologLogger) Info(msg string, fields ...LogField) {
	l.emit(l.logger.Info(), msg, fields)
}

func (l *ZerologLogger) Warn(msg string, fields ...LogField) {
	l.emit(l.logger.Warn(), msg, fields)
}

func (l *ZerologLogger) Error(msg string, fields ...LogField) {
	l.emit(l.logger.Error(), msg, fields)
}

func (l *ZerologLogger) Debug(msg string, fields ...LogField) {
	l.emit(l.logger.Debug(), msg, fields)
}

func (l *ZerologLogger) emit(event *zerolog.Event, msg string, fields []LogField) {
	for _, field := range fields {
		event = event.Interface(field.Key, field.Value)
	}
	event.Msg(msg)
}

// internal/app/system/alerts/alerts.go

// Package alerts defines the error-reporting and user-notification
// capabilities the dashboard depends on, plus zap-backed fallbacks that
// are always available and never fail. Handlers are constructed against
// these interfaces so business logic never has to ask "is the reporter
// even there".
package alerts

import (
	"go.uber.org/zap"
)

// Severity grades a reported failure.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Options qualifies a reported error.
//
// Silent reports go to diagnostics only; non-silent reports with a
// UserMessage also surface through the Notifier, because the user took an
// action and must be told it failed.
type Options struct {
	Context     string
	UserMessage string
	Severity    Severity
	Silent      bool
	Metadata    map[string]any
}

// Reporter is the error-reporting sink. Implementations must never panic
// and never return an error: reporting a failure cannot itself fail.
type Reporter interface {
	Handle(err error, opts Options)
}

// Notifier shows a user-facing message (toast-style). Implementations
// must never panic.
type Notifier interface {
	Show(message, level string)
}

// LogNotifier degrades notifications to structured log lines. It is the
// fallback when no real notification UI is attached.
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a log-backed Notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{log: logger}
}

// Show logs the message at a level matching the notification level.
func (n *LogNotifier) Show(message, level string) {
	switch level {
	case "error":
		n.log.Error("notification", zap.String("message", message))
	case "warning":
		n.log.Warn("notification", zap.String("message", message))
	default:
		n.log.Info("notification", zap.String("message", message))
	}
}

// LogReporter reports errors through zap and relays non-silent user
// messages to a Notifier. With a nil notifier it degrades to log-only.
type LogReporter struct {
	log      *zap.Logger
	notifier Notifier
}

// NewLogReporter creates the default Reporter. notifier may be nil.
func NewLogReporter(logger *zap.Logger, notifier Notifier) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{log: logger, notifier: notifier}
}

// Handle logs the error with its context and, for non-silent reports
// carrying a user message, shows the message through the notifier.
func (r *LogReporter) Handle(err error, opts Options) {
	fields := []zap.Field{
		zap.String("context", opts.Context),
		zap.String("severity", string(opts.Severity)),
		zap.Error(err),
	}
	if len(opts.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", opts.Metadata))
	}

	switch opts.Severity {
	case SeverityHigh:
		r.log.Error("reported error", fields...)
	case SeverityMedium:
		r.log.Warn("reported error", fields...)
	default:
		r.log.Info("reported error", fields...)
	}

	if !opts.Silent && opts.UserMessage != "" && r.notifier != nil {
		r.notifier.Show(opts.UserMessage, levelFor(opts.Severity))
	}
}

func levelFor(s Severity) string {
	switch s {
	case SeverityHigh:
		return "error"
	case SeverityMedium:
		return "warning"
	default:
		return "info"
	}
}

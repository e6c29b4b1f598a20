package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
	log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
	log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
	log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
}

var levelLabels = map[log.Level]string{
	log.ErrorLevel: "ERRO",
	log.WarnLevel:  "WARN",
	log.InfoLevel:  "INFO",
	log.DebugLevel: "DEBU",
}

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, color := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(levelLabels[level]).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}

	accent := levelColors[log.DebugLevel]
	for _, key := range []string{"error", "base", "target", "search", "request_id"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(accent)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelColors[log.ErrorLevel])
	return styles
}

// SetupLogger builds the process logger from cfg, writing to w, and
// installs it as the slog default.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	formatters := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(loggerStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}

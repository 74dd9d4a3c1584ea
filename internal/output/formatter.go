package output

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function into a Formatter
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var registry = map[string]Formatter{
	"console":         ConsoleFormatter{},
	"console-verbose": ConsoleVerboseFormatter{},
	"json":            JSONFormatter{Pretty: true},
	"csv":             CSVSummarizer{},
	"html":            HTMLFormatter{},
	"markdown":        MarkdownFormatter{},
}

var aliases = map[string]string{
	"verbose": "console-verbose",
	"text":    "console",
	"md":      "markdown",
}

// GetFormatterByName returns the formatter registered under name or alias,
// or nil if none matches
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return registry[name]
}

// AvailableFormatterNames lists registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContentType returns the HTTP content type for a formatter's output
func ContentType(name string) string {
	switch name {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// WriteFormatted renders the report and writes it to a timestamped file in
// the working directory, returning the file name
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("health_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

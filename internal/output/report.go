package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/twopc/savings-engine/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported output format")

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats the report and writes it to w.
func Render(w io.Writer, report *domain.ProjectionReport, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport saves the report in dir and returns the file name.
// The format "all" saves the console and detailed CSV variants.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	formats := []string{format}
	if NormalizeFormatName(format) == "all" {
		formats = []string{"console", "detailed-csv"}
	}

	var files []string
	for _, name := range formats {
		f, err := lookup(name)
		if err != nil {
			return files, err
		}
		file, err := WriteFormatted(f, report, dir)
		if err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

// SaveConfiguration writes a plan configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

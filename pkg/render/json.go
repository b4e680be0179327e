package render

import (
	"encoding/json"
	"io"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// JSONFormatter writes a scorecard report as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON report formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the report as indented JSON to the given writer.
func (f *JSONFormatter) Format(w io.Writer, report *interfaces.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

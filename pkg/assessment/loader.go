package assessment

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/moisesjgomez/archscore/pkg/interfaces"
)

// LoadLines splits raw export content into an ordered sequence of raw lines.
// Lines are kept verbatim apart from the trailing newline; no interpretation
// happens here.
func LoadLines(raw []byte) []interfaces.RawLine {
	var lines []interfaces.RawLine
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; scanner.Scan(); i++ {
		lines = append(lines, interfaces.RawLine{Index: i, Text: scanner.Text()})
	}
	return lines
}

// LoadFile reads the export file from disk into raw lines. The whole file is
// loaded at once; the export is bounded and the pipeline is strictly sequential.
func LoadFile(path string) ([]interfaces.RawLine, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assessment: reading report %s: %w", path, err)
	}
	return LoadLines(raw), nil
}

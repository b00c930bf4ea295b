package input

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The definition is a tab-separated table with a fixed shape. Rows,
// top to bottom: one per axis with the raw axis index, one per axis
// with the range encoding, one per mappable button with the raw
// button index. Columns: device type outer, platform inner.
const (
	definitionRows = 2*numAxes + numMappedButtons
	definitionCols = numDeviceTypes * numPlatforms
)

// ParseDefinition parses a mapping definition into a TableSet. Shape
// errors (wrong row or column count) abort the parse; a cell that is
// not an integer means unmapped, and an unrecognized range token
// means invalid range. Neither is an error.
func ParseDefinition(r io.Reader) (*TableSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mapping definition: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) != definitionRows {
		return nil, fmt.Errorf("mapping definition has %d rows, want %d", len(lines), definitionRows)
	}

	ts := emptyTableSet()
	for row, line := range lines {
		cells := strings.Split(line, "\t")
		if len(cells) != definitionCols {
			return nil, fmt.Errorf("mapping definition row %d has %d columns, want %d",
				row+1, len(cells), definitionCols)
		}
		for col, cell := range cells {
			dt := DeviceType(col / numPlatforms)
			p := Platform(col % numPlatforms)
			entry := &ts.tables[p].entries[dt]
			switch {
			case row < numAxes:
				entry.axisIndex[row] = parseIndex(cell)
			case row < 2*numAxes:
				entry.axisRange[row-numAxes] = rangeEncodings[strings.TrimSpace(cell)]
			default:
				entry.buttonIndex[row-2*numAxes] = parseIndex(cell)
			}
		}
	}
	return ts, nil
}

// LoadDefinition parses the mapping definition file at path.
func LoadDefinition(path string) (*TableSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping definition: %w", err)
	}
	defer f.Close()
	ts, err := ParseDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// parseIndex treats anything that is not an integer as unmapped.
func parseIndex(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return -1
	}
	return n
}

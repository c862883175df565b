package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/tipcalc/internal/calculator"
)

// csvFormatter formats the summary values as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(snap calculator.Snapshot) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write([]string{"Item", "Value", "Set", "Display"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, field := range summaryFields(snap) {
		value := field.Value
		if !field.Set {
			value = ""
		}
		record := []string{field.Label, value, fmt.Sprintf("%t", field.Set), snap.Rows[i]}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// Package export writes frequency tables in long format for use outside charfreq.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"charfreq/internal/domain"
)

var header = []string{"Novel", "Character", "Frequency"}

// WriteCSV writes table with a Novel,Character,Frequency header. Absent
// frequencies are written as empty cells.
func WriteCSV(w io.Writer, table domain.FrequencyTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range table {
		freq := ""
		if rec.Frequency.Valid {
			freq = strconv.Itoa(rec.Frequency.Value)
		}
		if err := cw.Write([]string{rec.Novel, rec.Character, freq}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes table to path, creating parent directories.
func WriteCSVFile(path string, table domain.FrequencyTable) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteCSV(f, table); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}

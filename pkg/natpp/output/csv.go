// Package output serialises tidy tables.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// WriteCSV writes t as comma-separated text with a header row.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// OutputFileMode is the permission of written output files.
const OutputFileMode = 0o644

// WriteCSVFile writes t to path with OutputFileMode. The file is written
// under a temporary name and renamed into place, so a failed run leaves no
// partial output.
func WriteCSVFile(path string, t *models.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".natpp-*.csv")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(OutputFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteCSV(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

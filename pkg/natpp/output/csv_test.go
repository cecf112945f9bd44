package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

func testTable() *models.Table {
	return &models.Table{Columns: []models.Column{
		{Name: "value", Values: []string{"100", "7.5"}},
		{Name: "time", Values: []string{"2020", "2021"}},
		{Name: "populationmeasure", Values: []string{"Births", "International_migration(In, Out)"}},
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testTable()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "value,time,populationmeasure\n" +
		"100,2020,Births\n" +
		"7.5,2021,\"International_migration(In, Out)\"\n"
	if buf.String() != expected {
		t.Errorf("WriteCSV output = %q, expected %q", buf.String(), expected)
	}
}

func TestWriteCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Experimental-National Population Projections.csv")

	if err := WriteCSVFile(path, testTable()); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("value,time,populationmeasure\n")) {
		t.Errorf("Unexpected output header: %q", data)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != OutputFileMode {
		t.Errorf("output mode = %v, expected %v", perm, os.FileMode(OutputFileMode))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the output file in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteCSVFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	if err := WriteCSVFile(path, testTable()); err == nil {
		t.Error("WriteCSVFile should fail when the directory does not exist")
	}
}

package parser

import (
	"errors"
	"testing"
)

const testWorkbook = `<?xml version="1.0"?>
<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"
 xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Names>
  <NamedRange ss:Name="Births" ss:RefersTo="=Births!R1C1:R2C3"/>
  <NamedRange ss:Name=" Print_Titles " ss:RefersTo="=Contents!R1:R2"/>
 </Names>
 <Worksheet ss:Name="Contents">
  <Table>
   <Row><Cell><Data ss:Type="String">Projection type:</Data></Cell><Cell><Data ss:Type="String">Principal projection</Data></Cell></Row>
   <Row><Cell><Data ss:Type="String">Coverage</Data></Cell><Cell/><Cell><Data ss:Type="String">United Kingdom (uk)</Data></Cell></Row>
  </Table>
 </Worksheet>
 <Worksheet ss:Name="Births">
  <Table>
   <Row><Cell><Data ss:Type="String">Sex</Data></Cell><Cell><Data ss:Type="String">Age</Data></Cell><Cell><Data ss:Type="String">2020</Data></Cell></Row>
   <Row><Cell><Data ss:Type="Number">1</Data></Cell><Cell><Data ss:Type="Number">0</Data></Cell><Cell><Data ss:Type="Number"> 100 </Data></Cell></Row>
  </Table>
 </Worksheet>
</Workbook>`

func TestParse(t *testing.T) {
	wb, err := Parse([]byte(testWorkbook))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(wb.Worksheets) != 2 {
		t.Fatalf("Expected 2 worksheets, got %d", len(wb.Worksheets))
	}
	if wb.Worksheets[0].Name != "Contents" {
		t.Errorf("Expected first worksheet 'Contents', got %q", wb.Worksheets[0].Name)
	}

	if len(wb.Names) != 2 {
		t.Fatalf("Expected 2 named ranges, got %d", len(wb.Names))
	}
	if wb.Names[0].Name != "Births" || wb.Names[0].RefersTo != "=Births!R1C1:R2C3" {
		t.Errorf("Unexpected first named range: %+v", wb.Names[0])
	}

	births, ok := wb.Worksheet("Births")
	if !ok {
		t.Fatal("Worksheet 'Births' not found")
	}
	expected := []string{"Sex", "Age", "2020", "1", "0", "100"}
	cells := births.Cells()
	if len(cells) != len(expected) {
		t.Fatalf("Expected %d cells, got %d: %v", len(expected), len(cells), cells)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cell %d = %q, expected %q", i, cells[i], expected[i])
		}
	}

	contents, _ := wb.Worksheet("Contents")
	coverage := contents.Rows[1]
	if len(coverage.Cells) != 3 {
		t.Errorf("Expected 3 cells in coverage row, got %d", len(coverage.Cells))
	}
	if len(coverage.Data) != 2 || coverage.Data[1] != "United Kingdom (uk)" {
		t.Errorf("Unexpected coverage row data: %q", coverage.Data)
	}
}

func TestParseIgnoresCaseAndPrefix(t *testing.T) {
	doc := `<ss:workbook xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
<ss:worksheet ss:name="Deaths"><ss:table><ss:row><ss:cell><ss:data>x</ss:data></ss:cell></ss:row></ss:table></ss:worksheet>
</ss:workbook>`

	wb, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ws, ok := wb.Worksheet("Deaths")
	if !ok {
		t.Fatal("Worksheet 'Deaths' not found")
	}
	if cells := ws.Cells(); len(cells) != 1 || cells[0] != "x" {
		t.Errorf("Unexpected cells: %q", cells)
	}
}

func TestParseDeclaredCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<Workbook><Worksheet Name=\"Contents\"><Table><Row><Cell><Data>caf\xe9</Data></Cell></Row></Table></Worksheet></Workbook>"

	wb, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ws, _ := wb.Worksheet("Contents")
	if cells := ws.Cells(); len(cells) != 1 || cells[0] != "café" {
		t.Errorf("Unexpected cells: %q", cells)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n"},
		{"unclosed element", "<Workbook><Worksheet>"},
		{"mismatched tags", "<Workbook><Row></Cell></Workbook>"},
		{"unknown charset", `<?xml version="1.0" encoding="x-no-such-charset"?><Workbook/>`},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.doc))
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%s) error = %v, expected ErrParse", tt.name, err)
		}
	}
}

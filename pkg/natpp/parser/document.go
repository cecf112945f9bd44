// Package parser reads spreadsheet-XML (SpreadsheetML 2003) projection
// workbooks and rebuilds the tables declared by their named ranges.
package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/natpp-go/pkg/natpp/models"
	"golang.org/x/net/html/charset"
)

// ErrParse indicates the document is not well-formed markup.
var ErrParse = errors.New("malformed spreadsheet document")

// Parse parses spreadsheet-XML bytes into a workbook tree.
// Element and attribute names are matched case-insensitively on their local
// part, so namespace prefixes (ss:, x:) are irrelevant. Only structure is
// checked here.
func Parse(data []byte) (*models.WorkbookData, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	wb := &models.WorkbookData{}

	var (
		sheet    *models.SheetData
		row      *models.CellRow
		rowText  strings.Builder
		cellText strings.Builder
		dataText strings.Builder
		inCell   bool
		inData   bool
		seenRoot bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			seenRoot = true
			switch strings.ToLower(t.Name.Local) {
			case "worksheet":
				sheet = &models.SheetData{Name: attrValue(t, "name")}
				wb.Worksheets = append(wb.Worksheets, sheet)
			case "row":
				if sheet != nil {
					row = &models.CellRow{}
					rowText.Reset()
				}
			case "cell":
				if row != nil {
					inCell = true
					cellText.Reset()
				}
			case "data":
				if row != nil {
					inData = true
					dataText.Reset()
				}
			case "namedrange":
				wb.Names = append(wb.Names, models.NamedRange{
					Name:     attrValue(t, "name"),
					RefersTo: attrValue(t, "refersto"),
				})
			}
		case xml.EndElement:
			switch strings.ToLower(t.Name.Local) {
			case "worksheet":
				sheet = nil
			case "row":
				if row != nil {
					row.Text = rowText.String()
					sheet.Rows = append(sheet.Rows, *row)
					row = nil
				}
			case "cell":
				if inCell {
					row.Cells = append(row.Cells, models.Cell{Text: strings.TrimSpace(cellText.String())})
					inCell = false
				}
			case "data":
				if inData {
					row.Data = append(row.Data, dataText.String())
					inData = false
				}
			}
		case xml.CharData:
			if row == nil {
				continue
			}
			rowText.Write(t)
			if inCell {
				cellText.Write(t)
			}
			if inData {
				dataText.Write(t)
			}
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}

	return wb, nil
}

// attrValue returns the value of the first attribute whose local name
// matches name case-insensitively.
func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if strings.EqualFold(attr.Name.Local, name) {
			return attr.Value
		}
	}
	return ""
}

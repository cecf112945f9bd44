package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/natpp-go/pkg/natpp/models"
)

// ErrMalformedRangeReference indicates a named-range reference without a
// usable column marker.
var ErrMalformedRangeReference = errors.New("malformed named range reference")

// CatalogRanges lists the expected named ranges declared in a workbook,
// in declaration order. Unexpected names are reported and skipped; a later
// declaration of an already catalogued name is skipped too.
func CatalogRanges(wb *models.WorkbookData) ([]models.RangeDescriptor, error) {
	var result []models.RangeDescriptor
	seen := make(map[models.RangeName]bool)

	for _, nr := range wb.Names {
		name := strings.TrimSpace(nr.Name)

		rn, ok := models.LookupRangeName(name)
		if !ok {
			log.WithField("range", name).Warn("Disregarding unwanted named range")
			continue
		}
		if seen[rn] {
			log.WithField("range", name).Warn("Disregarding duplicate named range")
			continue
		}

		rowCount, err := ParseRowCount(nr.RefersTo)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{"range": name, "row_count": rowCount}).Info("Extracting named range")

		seen[rn] = true
		result = append(result, models.RangeDescriptor{
			Name:     rn,
			RowCount: rowCount,
			RefersTo: nr.RefersTo,
		})
	}

	return result, nil
}

// ParseRowCount extracts the row stride from an R1C1 reference.
// Format: =Sheet!R1C1:R27C44, where the number after the C of the last
// segment (44) is the stride.
func ParseRowCount(ref string) (int, error) {
	parts := strings.Split(ref, ":")
	last := parts[len(parts)-1]

	idx := strings.Index(last, "C")
	if idx < 0 {
		return 0, fmt.Errorf("%w: couldn't find `C` in %q", ErrMalformedRangeReference, ref)
	}

	digits := last[idx+1:]
	if end := strings.Index(digits, "C"); end >= 0 {
		digits = digits[:end]
	}

	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: invalid stride %q in %q", ErrMalformedRangeReference, digits, ref)
	}

	return n, nil
}

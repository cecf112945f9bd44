package natpp

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/natpp-go/pkg/natpp/archive"
	"github.com/ukaji3/natpp-go/pkg/natpp/models"
	"github.com/ukaji3/natpp-go/pkg/natpp/parser"
	"github.com/ukaji3/natpp-go/pkg/natpp/tidy"
)

// Extract converts every recognised projection workbook in the zip archive
// at path into one tidy table. Members are processed in archive order and
// the first failure aborts the run.
func Extract(path string, opts Options) (*models.Table, error) {
	a, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	members, err := a.Match("*.xml")
	if err != nil {
		return nil, err
	}

	var tables []*models.Table
	for _, member := range members {
		id, ok := ProjectionIdentifier(member)
		if !ok {
			log.WithField("file", member).Warn("Not processing file without a projection type identifier")
			continue
		}
		variant, known := ProjectionTypes[id]
		if !known {
			log.WithFields(log.Fields{"file": member, "identifier": id}).
				Warn("Not processing file: unknown or experimental projection type")
			continue
		}

		log.WithFields(log.Fields{"file": member, "identifier": id, "variant": variant}).Info("Processing")

		data, err := a.ReadMember(member)
		if err != nil {
			return nil, NewFileError(member, "read", err)
		}

		t, err := ExtractFile(member, data, opts)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{"file": member, "rows": t.NumRows()}).Debug("Converted file")
		tables = append(tables, t)
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no member of %s has a recognised projection type", ErrNoEligibleFiles, path)
	}

	final := models.Concat(tables...)
	if final.NumRows() == 0 {
		return nil, fmt.Errorf("%w: accepted files produced no rows", ErrNoEligibleFiles)
	}

	return tidy.Conform(final)
}

// ExtractFile converts a single projection workbook into a tidy table.
func ExtractFile(name string, data []byte, opts Options) (*models.Table, error) {
	wb, err := parser.Parse(data)
	if err != nil {
		return nil, NewFileError(name, "parse", err)
	}

	meta, err := parser.ResolveMetadata(wb)
	if err != nil {
		return nil, NewFileError(name, "metadata", err)
	}

	descs, err := parser.CatalogRanges(wb)
	if err != nil {
		return nil, NewFileError(name, "catalog", err)
	}

	frames := make([]models.Frame, 0, len(descs))
	processed := make([]models.RangeName, 0, len(descs))
	for _, desc := range descs {
		t, err := parser.Reconstruct(wb, desc)
		if err != nil {
			return nil, NewFileError(name, "reconstruct", err)
		}
		frames = append(frames, models.Frame{
			Table:      t,
			Tab:        desc.Name.String(),
			Projection: meta.ProjectionType,
			Coverage:   meta.GeographyCode,
		})
		processed = append(processed, desc.Name)
	}

	if err := checkRangeSet(processed, opts.Strict); err != nil {
		return nil, NewFileError(name, "reconstruct", err)
	}

	t, err := tidy.Reshape(frames)
	if err != nil {
		return nil, NewFileError(name, "reshape", err)
	}

	return t, nil
}

// checkRangeSet compares the processed ranges against the expected set.
// Missing ranges fail in strict mode and are reported otherwise.
func checkRangeSet(processed []models.RangeName, strict bool) error {
	done := make(map[models.RangeName]bool, len(processed))
	for _, rn := range processed {
		done[rn] = true
	}

	var missing []string
	for _, rn := range models.RangeNames() {
		if !done[rn] {
			missing = append(missing, rn.String())
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	if strict {
		return fmt.Errorf("%w: missing %s", ErrRangeSetMismatch, strings.Join(missing, ","))
	}
	log.WithField("missing", strings.Join(missing, ",")).Warn("Workbook does not declare every expected named range")
	return nil
}

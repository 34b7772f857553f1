// Package legacy imports the old semicolon-separated inventory dumps that
// predate this system. Files are best-effort: unreadable rows are skipped,
// unreadable files are reported per name.
package legacy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	repo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
)

// filename keyword -> asset type, checked in order
var typeKeywords = []struct {
	keyword string
	typ     string
}{
	{"bendung", entities.TypeBendung},
	{"saluran", entities.TypeSaluran},
	{"bang_ukur", entities.TypeUkur},
	{"terjunan", entities.TypeTerjunan},
	{"sadap", entities.TypeSadap},
	{"gorong", entities.TypeGorong},
	{"jembatan", entities.TypeJembatan},
}

type Summary struct {
	Imported   int               `json:"imported"`
	FileErrors map[string]string `json:"file_errors,omitempty"`
}

type Importer struct {
	assets repo.AssetRepository
	log    *zap.Logger
}

func New(assets repo.AssetRepository, log *zap.Logger) *Importer {
	return &Importer{assets: assets, log: log}
}

// ImportFolder walks every .csv/.txt/.xls file in the folder. The old
// format is semicolon-separated with a junk header row; column 1 is the
// asset code (1-1-1-1-01 style) and column 2 the name.
func (im *Importer) ImportFolder(folder string) (Summary, error) {
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: open folder %s: %w", entities.ErrInvalidInput, folder, err)
	}

	sum := Summary{FileErrors: map[string]string{}}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv", ".txt", ".xls":
		default:
			continue
		}

		n, err := im.importFile(filepath.Join(folder, name), detectType(name))
		if err != nil {
			sum.FileErrors[name] = err.Error()
			im.log.Warn("legacy file skipped", zap.String("file", name), zap.Error(err))
			continue
		}
		sum.Imported += n
	}
	if len(sum.FileErrors) == 0 {
		sum.FileErrors = nil
	}
	im.log.Info("legacy import finished",
		zap.Int("imported", sum.Imported), zap.Int("failed_files", len(sum.FileErrors)))
	return sum, nil
}

func (im *Importer) importFile(path, assetType string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	count := 0
	first := true
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// old dumps contain stray delimiter rows, skip them
			continue
		}
		if first {
			first = false // header row carries column junk, never data
			continue
		}
		if len(rec) < 3 {
			continue
		}

		code := strings.TrimSpace(rec[1])
		name := strings.TrimSpace(rec[2])
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}
		if code == "" {
			code = "-"
		}
		a := &entities.Asset{Code: code, Name: name, Type: assetType}
		if err := im.assets.Create(a); err != nil {
			// duplicate codes happen across old dumps; keep going
			im.log.Debug("legacy row skipped", zap.String("code", code), zap.Error(err))
			continue
		}
		count++
	}
	return count, nil
}

func detectType(filename string) string {
	lower := strings.ToLower(filename)
	for _, kw := range typeKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.typ
		}
	}
	return entities.TypeUmum
}

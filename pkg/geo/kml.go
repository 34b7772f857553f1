// Package geo extracts placemark references from uploaded KML/KMZ files so
// an asset can carry a map-geometry pointer. Rendering is someone else's
// job; only the reference is kept.
package geo

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

type Placemark struct {
	Name        string `json:"name"`
	Coordinates string `json:"coordinates"` // lon,lat[,alt] of the first vertex
}

// ParseKML pulls every Placemark out of a KML document. The parser is
// lenient HTML, so tag selectors are lowercase.
func ParseKML(r io.Reader) ([]Placemark, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse kml: %w", entities.ErrInvalidInput, err)
	}
	var out []Placemark
	doc.Find("placemark").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("name").First().Text())
		coords := strings.Fields(strings.TrimSpace(sel.Find("coordinates").First().Text()))
		p := Placemark{Name: name}
		if len(coords) > 0 {
			p.Coordinates = coords[0]
		}
		out = append(out, p)
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no placemark found in kml", entities.ErrInvalidInput)
	}
	return out, nil
}

// ParseKMZ unpacks the zipped variant and parses the first .kml entry.
func ParseKMZ(data []byte) ([]Placemark, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: open kmz: %w", entities.ErrInvalidInput, err)
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", entities.ErrInvalidInput, f.Name, err)
		}
		defer rc.Close()
		return ParseKML(rc)
	}
	return nil, fmt.Errorf("%w: kmz contains no kml entry", entities.ErrInvalidInput)
}

// GeometryRef condenses a placemark list into the single reference string
// stored on the asset row.
func GeometryRef(marks []Placemark) string {
	if len(marks) == 0 {
		return ""
	}
	first := marks[0]
	if first.Name == "" {
		return first.Coordinates
	}
	if first.Coordinates == "" {
		return first.Name
	}
	return fmt.Sprintf("%s @ %s", first.Name, first.Coordinates)
}

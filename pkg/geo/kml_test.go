package geo

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Bendung Way Seputih</name>
      <Point><coordinates>105.312,-4.921,0</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>Saluran Primer</name>
      <LineString><coordinates>
        105.313,-4.922,0 105.320,-4.930,0
      </coordinates></LineString>
    </Placemark>
  </Document>
</kml>`

func TestParseKML(t *testing.T) {
	marks, err := ParseKML(strings.NewReader(sampleKML))
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, "Bendung Way Seputih", marks[0].Name)
	assert.Equal(t, "105.312,-4.921,0", marks[0].Coordinates)
	// line geometries keep only the first vertex as the reference point
	assert.Equal(t, "105.313,-4.922,0", marks[1].Coordinates)
}

func TestParseKMLNoPlacemark(t *testing.T) {
	_, err := ParseKML(strings.NewReader("<kml><Document></Document></kml>"))
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestParseKMZ(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("doc.kml")
	require.NoError(t, err)
	_, err = w.Write([]byte(sampleKML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	marks, err := ParseKMZ(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, marks, 2)
}

func TestParseKMZWithoutKMLEntry(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("foto.jpg")
	require.NoError(t, err)
	_, err = w.Write([]byte{0xff, 0xd8})
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ParseKMZ(buf.Bytes())
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestGeometryRef(t *testing.T) {
	assert.Equal(t, "", GeometryRef(nil))
	assert.Equal(t, "Bendung @ 105.3,-4.9",
		GeometryRef([]Placemark{{Name: "Bendung", Coordinates: "105.3,-4.9"}}))
	assert.Equal(t, "105.3,-4.9", GeometryRef([]Placemark{{Coordinates: "105.3,-4.9"}}))
	assert.Equal(t, "Bendung", GeometryRef([]Placemark{{Name: "Bendung"}}))
}

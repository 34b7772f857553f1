package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/iksi"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/priority"
)

func TestBuildWorkbook(t *testing.T) {
	w := Workbook{
		Assets: []entities.Asset{{
			Code: "B-01", Name: "Bendung Way Seputih",
			Type: entities.TypeBendung, DesignAreaHa: 1200,
		}},
		Volumes: []entities.DamageVolume{{AssetID: 1, GoodQty: 5, LightDamageQty: 3, HeavyDamageQty: 2, Score: 81}},
		Inspections: []entities.Inspection{{
			AssetID: 1, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Surveyor: "Andi", CivilCondition: 80, MechCondition: 60,
			CivilFunction: 70, MechFunction: 50, ImpactedAreaHa: 500,
		}},
		Planting: []entities.PlantingRecord{{Season: "MT-1", SupplyDischarge: 1, DemandDischarge: 2}},
		Ranking: priority.Ranking{
			Ranked: []priority.RankedAsset{{
				Code: "B-01", Name: "Bendung Way Seputih",
				InspectionDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Condition:      60, Function: 50, ImpactedAreaHa: 500,
				Urgency: 180, Class: priority.ClassUrgent,
			}},
			Pending: []entities.Asset{{Code: "S-09", Name: "Saluran Baru"}},
		},
		IKSI: iksi.Result{Total: 55.5, Pillars: []iksi.PillarScore{
			{Name: iksi.PillarPhysical, Weight: 0.45, Score: 70, Weighted: 31.5},
		}},
	}

	blob, err := Build(w)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{
		"Aset", "Volume Kerusakan", "Inspeksi", "Tanam", "P3A",
		"Personalia", "Sarana", "Dokumentasi", "Prioritas", "IKSI",
	} {
		assert.Contains(t, sheets, want)
	}

	code, err := f.GetCellValue("Aset", "A2")
	require.NoError(t, err)
	assert.Equal(t, "B-01", code)

	head, err := f.GetCellValue("Prioritas", "H1")
	require.NoError(t, err)
	assert.Equal(t, "Kelas", head)

	cls, err := f.GetCellValue("Prioritas", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Urgent", cls)

	// pending assets trail the ranked rows with their own marker
	pending, err := f.GetCellValue("Prioritas", "H3")
	require.NoError(t, err)
	assert.Equal(t, "Belum Diinspeksi", pending)

	total, err := f.GetCellValue("IKSI", "A3")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", total)
}

func TestBuildEmptyWorkbook(t *testing.T) {
	blob, err := Build(Workbook{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 10)
}

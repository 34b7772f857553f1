// Package report renders the registry into the spreadsheet blangko the
// irrigation office exchanges: one sheet per entity plus the priority and
// IKSI summary sheets.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/iksi"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/priority"
)

const dateLayout = "2006-01-02"

// Workbook bundles everything one export run needs.
type Workbook struct {
	Assets       []entities.Asset
	Volumes      []entities.DamageVolume
	Inspections  []entities.Inspection
	Planting     []entities.PlantingRecord
	Associations []entities.AssociationRecord
	Staffing     []entities.StaffingRecord
	Facilities   []entities.FacilityRecord
	Documents    []entities.DocumentRecord
	Ranking      priority.Ranking
	IKSI         iksi.Result
}

// Build renders the workbook to xlsx bytes.
func Build(w Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"Aset", assetHeader, assetRows(w.Assets)},
		{"Volume Kerusakan", volumeHeader, volumeRows(w.Volumes)},
		{"Inspeksi", inspectionHeader, inspectionRows(w.Inspections)},
		{"Tanam", plantingHeader, plantingRows(w.Planting)},
		{"P3A", associationHeader, associationRows(w.Associations)},
		{"Personalia", staffingHeader, staffingRows(w.Staffing)},
		{"Sarana", facilityHeader, facilityRows(w.Facilities)},
		{"Dokumentasi", documentHeader, documentRows(w.Documents)},
		{"Prioritas", priorityHeader, priorityRows(w.Ranking)},
		{"IKSI", iksiHeader, iksiRows(w.IKSI)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", s.name, err)
		}

		head := make([]any, len(s.header))
		for j, h := range s.header {
			head[j] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &head); err != nil {
			return nil, fmt.Errorf("sheet %s header: %w", s.name, err)
		}
		end, _ := excelize.CoordinatesToCellName(len(s.header), 1)
		if err := f.SetCellStyle(s.name, "A1", end, headerStyle); err != nil {
			return nil, err
		}
		for ri, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, ri+2)
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", s.name, ri+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var assetHeader = []string{
	"Kode Aset", "Nama Aset", "Jenis", "Satuan", "Tahun Bangun",
	"Tahun Rehab", "Luas Layanan (ha)", "Nilai Aset", "Referensi Peta",
}

func assetRows(assets []entities.Asset) [][]any {
	rows := make([][]any, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []any{
			a.Code, a.Name, a.Type, a.Unit, a.BuiltYear,
			a.RehabYear, a.DesignAreaHa, a.ReplacementValue, a.GeometryRef,
		})
	}
	return rows
}

var volumeHeader = []string{"ID Aset", "Baik (B)", "Rusak Ringan (RR)", "Rusak Berat (RB)", "Nilai Kinerja"}

func volumeRows(volumes []entities.DamageVolume) [][]any {
	rows := make([][]any, 0, len(volumes))
	for _, v := range volumes {
		rows = append(rows, []any{
			v.AssetID, v.GoodQty, v.LightDamageQty, v.HeavyDamageQty, v.Score,
		})
	}
	return rows
}

var inspectionHeader = []string{
	"ID Aset", "Tanggal", "Petugas", "Kondisi Sipil", "Kondisi ME",
	"Fungsi Sipil", "Fungsi ME", "Luas Terdampak (ha)", "Rekomendasi", "Estimasi Biaya",
}

func inspectionRows(inspections []entities.Inspection) [][]any {
	rows := make([][]any, 0, len(inspections))
	for _, i := range inspections {
		rows = append(rows, []any{
			i.AssetID, i.Date.Format(dateLayout), i.Surveyor,
			i.CivilCondition, i.MechCondition, i.CivilFunction, i.MechFunction,
			i.ImpactedAreaHa, i.Recommendation, i.CostEstimate,
		})
	}
	return rows
}

var plantingHeader = []string{
	"Musim", "Rencana Tanam (ha)", "Realisasi (ha)", "Debit Andalan",
	"Debit Kebutuhan", "Faktor K", "Hasil (ton/ha)", "Target (ton/ha)",
}

func plantingRows(records []entities.PlantingRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.Season, r.PlannedAreaHa, r.RealizedAreaHa, r.SupplyDischarge,
			r.DemandDischarge, r.FaktorK(), r.YieldTonHa, r.TargetYieldTon,
		})
	}
	return rows
}

var associationHeader = []string{"Nama P3A", "Badan Hukum", "Keaktifan", "Jumlah Anggota"}

func associationRows(records []entities.AssociationRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Name, r.LegalStatus, r.ActivityLevel, r.MemberCount})
	}
	return rows
}

var staffingHeader = []string{"Jabatan", "Jumlah"}

func staffingRows(records []entities.StaffingRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Position, r.Count})
	}
	return rows
}

var facilityHeader = []string{"Sarana", "Jumlah", "Memadai"}

func facilityRows(records []entities.FacilityRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Name, r.Quantity, r.Adequate})
	}
	return rows
}

var documentHeader = []string{"Dokumen", "Tersedia"}

func documentRows(records []entities.DocumentRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Name, r.Present})
	}
	return rows
}

var priorityHeader = []string{
	"Kode Aset", "Nama Aset", "Tanggal Inspeksi", "Kondisi (K)", "Fungsi (F)",
	"Luas Terdampak (ha)", "Urgensi", "Kelas",
}

func priorityRows(r priority.Ranking) [][]any {
	rows := make([][]any, 0, len(r.Ranked)+len(r.Pending))
	for _, a := range r.Ranked {
		rows = append(rows, []any{
			a.Code, a.Name, a.InspectionDate.Format(dateLayout),
			a.Condition, a.Function, a.ImpactedAreaHa, a.Urgency, a.Class,
		})
	}
	for _, a := range r.Pending {
		rows = append(rows, []any{a.Code, a.Name, "-", "-", "-", "-", "-", "Belum Diinspeksi"})
	}
	return rows
}

var iksiHeader = []string{"Pilar", "Bobot", "Skor", "Terbobot"}

func iksiRows(res iksi.Result) [][]any {
	rows := make([][]any, 0, len(res.Pillars)+1)
	for _, p := range res.Pillars {
		rows = append(rows, []any{p.Name, p.Weight, p.Score, p.Weighted})
	}
	rows = append(rows, []any{"TOTAL", 1.0, res.Total, res.Total})
	return rows
}

package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	analysisSvc "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/service"
	assetRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	inspRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/report"
	supRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

type ReportCtrl struct {
	assets      assetRepo.AssetRepository
	inspections inspRepo.InspectionRepository
	supporting  supRepo.SupportingRepository
	analysis    analysisSvc.AnalysisService
}

func New(
	assets assetRepo.AssetRepository,
	inspections inspRepo.InspectionRepository,
	supporting supRepo.SupportingRepository,
	analysis analysisSvc.AnalysisService,
) *ReportCtrl {
	return &ReportCtrl{
		assets:      assets,
		inspections: inspections,
		supporting:  supporting,
		analysis:    analysis,
	}
}

// Export streams the full blangko workbook.
func (h *ReportCtrl) Export(c echo.Context) error {
	var (
		w   report.Workbook
		err error
	)
	if w.Assets, err = h.assets.List(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Volumes, err = h.assets.ListDamageVolumes(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Inspections, err = h.inspections.ListAll(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Planting, err = h.supporting.ListPlanting(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Associations, err = h.supporting.ListAssociations(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Staffing, err = h.supporting.ListStaffing(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Facilities, err = h.supporting.ListFacilities(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Documents, err = h.supporting.ListDocuments(); err != nil {
		return web.JSONError(c, err)
	}
	if w.Ranking, err = h.analysis.RankPriorities(); err != nil {
		return web.JSONError(c, err)
	}
	if w.IKSI, err = h.analysis.ComputeIKSI(); err != nil {
		return web.JSONError(c, err)
	}

	blob, err := report.Build(w)
	if err != nil {
		return web.JSONError(c, err)
	}

	filename := fmt.Sprintf("Laporan_SIKI_%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}

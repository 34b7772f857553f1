package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/service"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

type AnalysisCtrl struct {
	svc service.AnalysisService
}

func New(svc service.AnalysisService) *AnalysisCtrl { return &AnalysisCtrl{svc: svc} }

// Priorities returns the ranked repair list plus the pending-inspection
// bucket.
func (h *AnalysisCtrl) Priorities(c echo.Context) error {
	ranking, err := h.svc.RankPriorities()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, ranking)
}

// IKSI returns the composite index with the per-pillar breakdown.
func (h *AnalysisCtrl) IKSI(c echo.Context) error {
	res, err := h.svc.ComputeIKSI()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/legacy"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

type LegacyCtrl struct {
	importer *legacy.Importer
}

func New(importer *legacy.Importer) *LegacyCtrl { return &LegacyCtrl{importer: importer} }

type importReq struct {
	Folder string `json:"folder"`
}

func (h *LegacyCtrl) Import(c echo.Context) error {
	var req importReq
	if err := c.Bind(&req); err != nil || req.Folder == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "folder is required"})
	}
	sum, err := h.importer.ImportFolder(req.Folder)
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

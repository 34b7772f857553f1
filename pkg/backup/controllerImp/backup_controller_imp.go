package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/backup"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

type BackupCtrl struct {
	svc *backup.Service
}

func New(svc *backup.Service) *BackupCtrl { return &BackupCtrl{svc: svc} }

func (h *BackupCtrl) Export(c echo.Context) error {
	doc, err := h.svc.Export()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *BackupCtrl) Restore(c echo.Context) error {
	var doc backup.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Restore(doc); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"restored": doc.ID})
}

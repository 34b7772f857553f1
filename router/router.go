package router

import (
	"github.com/labstack/echo/v4"

	analysisCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/controllerImp"
	assetCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/controllerImp"
	backupCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/backup/controllerImp"
	healthCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/health/controllerImp"
	inspectionCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/controllerImp"
	legacyCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/legacy/controllerImp"
	reportCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/report/controllerImp"
	supportingCtrl "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/controllerImp"
)

func New(
	e *echo.Echo,
	asset *assetCtrl.AssetCtrl,
	inspection *inspectionCtrl.InspectionCtrl,
	supporting *supportingCtrl.SupportingCtrl,
	analysis *analysisCtrl.AnalysisCtrl,
	rep *reportCtrl.ReportCtrl,
	bak *backupCtrl.BackupCtrl,
	legacy *legacyCtrl.LegacyCtrl,
	health *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.GET("/health", health.Health)

	a := e.Group("/assets")
	a.POST("", asset.Create)
	a.GET("", asset.List)
	a.PUT("", asset.BulkReplace)
	a.POST("/recompute", asset.Recompute)
	a.GET("/:id", asset.Get)
	a.PUT("/:id", asset.Update)
	a.DELETE("/:id", asset.Delete)
	a.PUT("/:id/damage", asset.SetDamageVolume)
	a.POST("/:id/geometry", asset.UploadGeometry)

	a.POST("/:id/inspections", inspection.Create)
	a.GET("/:id/inspections", inspection.List)

	s := e.Group("/supporting")
	s.GET("/planting", supporting.ListPlanting)
	s.POST("/planting", supporting.CreatePlanting)
	s.PUT("/planting", supporting.ReplacePlanting)
	s.GET("/associations", supporting.ListAssociations)
	s.POST("/associations", supporting.CreateAssociation)
	s.PUT("/associations", supporting.ReplaceAssociations)
	s.GET("/staffing", supporting.ListStaffing)
	s.POST("/staffing", supporting.CreateStaffing)
	s.PUT("/staffing", supporting.ReplaceStaffing)
	s.GET("/facilities", supporting.ListFacilities)
	s.POST("/facilities", supporting.CreateFacility)
	s.PUT("/facilities", supporting.ReplaceFacilities)
	s.GET("/documents", supporting.ListDocuments)
	s.POST("/documents", supporting.CreateDocument)
	s.PUT("/documents", supporting.ReplaceDocuments)

	e.GET("/analysis/priorities", analysis.Priorities)
	e.GET("/analysis/iksi", analysis.IKSI)

	e.GET("/export/blangko", rep.Export)

	e.GET("/backup", bak.Export)
	e.POST("/backup/restore", bak.Restore)
	e.POST("/import/legacy", legacy.Import)

	return e
}

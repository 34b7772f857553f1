package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/database"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/logger"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/router"

	analysisCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/controllerImp"
	analysisSvcImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/analysis/serviceImp"
	assetCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/controllerImp"
	assetRepoImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repositoryImp"
	assetSvcImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/serviceImp"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/backup"
	backupCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/backup/controllerImp"
	healthCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/health/controllerImp"
	inspectionCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/controllerImp"
	inspectionRepoImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/repositoryImp"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/iksi"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/legacy"
	legacyCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/legacy/controllerImp"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/priority"
	reportCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/report/controllerImp"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/scoring"
	supportingCtrlImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/controllerImp"
	supportingRepoImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/repositoryImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	pol, err := config.LoadPolicy(cfg.PolicyPath)
	if err != nil {
		zlog.Fatal("load policy", zap.Error(err))
	}

	// 2) DB (sqlite) + versioned migrations
	db, err := database.OpenSQLite(cfg.DBPath, zlog)
	if err != nil {
		zlog.Fatal("open database", zap.Error(err))
	}

	// 3) Engines built from policy constants
	scorer := scoring.New(pol)
	engine := priority.New(pol)
	aggregator := iksi.New(pol)

	// 4) Repos
	assetRepo := assetRepoImp.New(db)
	inspectionRepo := inspectionRepoImp.New(db)
	supportingRepo := supportingRepoImp.New(db)

	// 5) Services
	assetSvc := assetSvcImp.New(assetRepo, scorer, zlog)
	analysisSvc := analysisSvcImp.New(assetRepo, inspectionRepo, supportingRepo, engine, aggregator, zlog)
	backupSvc := backup.New(db, zlog)
	importer := legacy.New(assetRepo, zlog)

	// 6) Controllers
	aCtrl := assetCtrlImp.New(assetRepo, assetSvc)
	iCtrl := inspectionCtrlImp.New(inspectionRepo, assetRepo)
	sCtrl := supportingCtrlImp.New(supportingRepo)
	anCtrl := analysisCtrlImp.New(analysisSvc)
	rCtrl := reportCtrlImp.New(assetRepo, inspectionRepo, supportingRepo, analysisSvc)
	bCtrl := backupCtrlImp.New(backupSvc)
	lCtrl := legacyCtrlImp.New(importer)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	r := router.New(e, aCtrl, iCtrl, sCtrl, anCtrl, rCtrl, bCtrl, lCtrl, hCtrl)

	// 8) Start
	zlog.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	assetRepo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

var validate = validator.New()

type InspectionCtrl struct {
	repo   repository.InspectionRepository
	assets assetRepo.AssetRepository
}

func New(repo repository.InspectionRepository, assets assetRepo.AssetRepository) *InspectionCtrl {
	return &InspectionCtrl{repo: repo, assets: assets}
}

type inspectionReq struct {
	Date           string  `json:"date" validate:"required"`
	Surveyor       string  `json:"surveyor" validate:"required"`
	CivilCondition float64 `json:"civil_condition" validate:"gte=0,lte=100"`
	MechCondition  float64 `json:"mech_condition" validate:"gte=0,lte=100"`
	CivilFunction  float64 `json:"civil_function" validate:"gte=0,lte=100"`
	MechFunction   float64 `json:"mech_function" validate:"gte=0,lte=100"`
	ImpactedAreaHa float64 `json:"impacted_area_ha" validate:"gte=0"`
	Recommendation string  `json:"recommendation"`
	CostEstimate   float64 `json:"cost_estimate" validate:"gte=0"`
	PhotoRef       string  `json:"photo_ref"`
}

// Create appends one survey to the asset's history.
func (h *InspectionCtrl) Create(c echo.Context) error {
	assetID, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	if _, err := h.assets.FindByID(assetID); err != nil {
		return web.JSONError(c, err)
	}

	var req inspectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return web.JSONError(c, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return web.JSONError(c, fmt.Errorf("%w: bad date %q, want YYYY-MM-DD",
			entities.ErrInvalidInput, req.Date))
	}

	ins := &entities.Inspection{
		AssetID:        assetID,
		Date:           date,
		Surveyor:       req.Surveyor,
		CivilCondition: req.CivilCondition,
		MechCondition:  req.MechCondition,
		CivilFunction:  req.CivilFunction,
		MechFunction:   req.MechFunction,
		ImpactedAreaHa: req.ImpactedAreaHa,
		Recommendation: req.Recommendation,
		CostEstimate:   req.CostEstimate,
		PhotoRef:       req.PhotoRef,
	}
	if err := h.repo.Append(ins); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusCreated, ins)
}

func (h *InspectionCtrl) List(c echo.Context) error {
	assetID, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	history, err := h.repo.ListByAsset(assetID)
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

func paramID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad asset id %q", entities.ErrInvalidInput, c.Param("id"))
	}
	return uint(id), nil
}

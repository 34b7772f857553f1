package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/service"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/geo"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

var validate = validator.New()

type AssetCtrl struct {
	repo repository.AssetRepository
	svc  service.AssetService
}

func New(repo repository.AssetRepository, svc service.AssetService) *AssetCtrl {
	return &AssetCtrl{repo: repo, svc: svc}
}

type assetReq struct {
	Code             string                       `json:"code" validate:"required"`
	Name             string                       `json:"name" validate:"required"`
	Type             string                       `json:"type" validate:"required"`
	Unit             string                       `json:"unit"`
	BuiltYear        int                          `json:"built_year"`
	RehabYear        int                          `json:"rehab_year"`
	Dimensions       entities.TechnicalDimensions `json:"dimensions"`
	DesignAreaHa     float64                      `json:"design_area_ha" validate:"gte=0"`
	ReplacementValue float64                      `json:"replacement_value" validate:"gte=0"`
}

func (req assetReq) toEntity() entities.Asset {
	return entities.Asset{
		Code:             req.Code,
		Name:             req.Name,
		Type:             req.Type,
		Unit:             req.Unit,
		BuiltYear:        req.BuiltYear,
		RehabYear:        req.RehabYear,
		Dimensions:       req.Dimensions,
		DesignAreaHa:     req.DesignAreaHa,
		ReplacementValue: req.ReplacementValue,
	}
}

func (h *AssetCtrl) Create(c echo.Context) error {
	var req assetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return web.JSONError(c, err)
	}
	a := req.toEntity()
	created, err := h.svc.Register(&a)
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AssetCtrl) List(c echo.Context) error {
	assets, err := h.repo.List()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, assets)
}

func (h *AssetCtrl) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	a, err := h.repo.FindByID(id)
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AssetCtrl) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	existing, err := h.repo.FindByID(id)
	if err != nil {
		return web.JSONError(c, err)
	}
	var req assetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return web.JSONError(c, err)
	}
	a := req.toEntity()
	a.AssetID = existing.AssetID
	a.GeometryRef = existing.GeometryRef
	a.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&a); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AssetCtrl) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	if err := h.repo.Delete(id); err != nil {
		return web.JSONError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkReplace takes the full edited table, upserting by code.
func (h *AssetCtrl) BulkReplace(c echo.Context) error {
	var reqs []assetReq
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	assets := make([]entities.Asset, 0, len(reqs))
	for i, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return web.JSONError(c, fmt.Errorf("row %d: %w", i+1, err))
		}
		assets = append(assets, req.toEntity())
	}
	if err := h.repo.BulkReplace(assets); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": len(assets)})
}

type damageReq struct {
	GoodQty        float64 `json:"good_qty" validate:"gte=0"`
	LightDamageQty float64 `json:"light_damage_qty" validate:"gte=0"`
	HeavyDamageQty float64 `json:"heavy_damage_qty" validate:"gte=0"`
}

func (h *AssetCtrl) SetDamageVolume(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	var req damageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return web.JSONError(c, err)
	}
	dv, err := h.svc.SetDamageVolume(id, req.GoodQty, req.LightDamageQty, req.HeavyDamageQty)
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, dv)
}

func (h *AssetCtrl) Recompute(c echo.Context) error {
	volumes, err := h.svc.RecomputeScores()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, volumes)
}

// UploadGeometry accepts a raw KML or KMZ body and stores the extracted
// placemark reference on the asset.
func (h *AssetCtrl) UploadGeometry(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return web.JSONError(c, err)
	}
	a, err := h.repo.FindByID(id)
	if err != nil {
		return web.JSONError(c, err)
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty body"})
	}

	var marks []geo.Placemark
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.Contains(ct, "kmz") || strings.Contains(ct, "zip") {
		marks, err = geo.ParseKMZ(body)
	} else {
		marks, err = geo.ParseKML(strings.NewReader(string(body)))
	}
	if err != nil {
		return web.JSONError(c, err)
	}

	a.GeometryRef = geo.GeometryRef(marks)
	if err := h.repo.Update(a); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func paramID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad asset id %q", entities.ErrInvalidInput, c.Param("id"))
	}
	return uint(id), nil
}

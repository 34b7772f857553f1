package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/web"
)

// SupportingCtrl serves the four non-physical pillar tables. The handlers
// are deliberately uniform: list, insert one, replace all.
type SupportingCtrl struct {
	repo repository.SupportingRepository
}

func New(repo repository.SupportingRepository) *SupportingCtrl {
	return &SupportingCtrl{repo: repo}
}

func (h *SupportingCtrl) ListPlanting(c echo.Context) error {
	return list(c, h.repo.ListPlanting)
}

func (h *SupportingCtrl) CreatePlanting(c echo.Context) error {
	var rec entities.PlantingRecord
	if err := c.Bind(&rec); err != nil {
		return badJSON(c)
	}
	if rec.PlannedAreaHa < 0 || rec.RealizedAreaHa < 0 ||
		rec.SupplyDischarge < 0 || rec.DemandDischarge < 0 {
		return web.JSONError(c, fmt.Errorf("%w: negative planting figures", entities.ErrInvalidInput))
	}
	return insert(c, &rec, h.repo.InsertPlanting)
}

func (h *SupportingCtrl) ReplacePlanting(c echo.Context) error {
	var recs []entities.PlantingRecord
	if err := c.Bind(&recs); err != nil {
		return badJSON(c)
	}
	return replace(c, recs, h.repo.ReplacePlanting)
}

func (h *SupportingCtrl) ListAssociations(c echo.Context) error {
	return list(c, h.repo.ListAssociations)
}

func (h *SupportingCtrl) CreateAssociation(c echo.Context) error {
	var rec entities.AssociationRecord
	if err := c.Bind(&rec); err != nil {
		return badJSON(c)
	}
	switch rec.ActivityLevel {
	case entities.ActivityActive, entities.ActivityPartial, entities.ActivityInactive:
	default:
		return web.JSONError(c, fmt.Errorf("%w: activity level %q",
			entities.ErrInvalidInput, rec.ActivityLevel))
	}
	return insert(c, &rec, h.repo.InsertAssociation)
}

func (h *SupportingCtrl) ReplaceAssociations(c echo.Context) error {
	var recs []entities.AssociationRecord
	if err := c.Bind(&recs); err != nil {
		return badJSON(c)
	}
	return replace(c, recs, h.repo.ReplaceAssociations)
}

func (h *SupportingCtrl) ListStaffing(c echo.Context) error {
	return list(c, h.repo.ListStaffing)
}

func (h *SupportingCtrl) CreateStaffing(c echo.Context) error {
	var rec entities.StaffingRecord
	if err := c.Bind(&rec); err != nil {
		return badJSON(c)
	}
	if rec.Count < 0 {
		return web.JSONError(c, fmt.Errorf("%w: negative headcount", entities.ErrInvalidInput))
	}
	return insert(c, &rec, h.repo.InsertStaffing)
}

func (h *SupportingCtrl) ReplaceStaffing(c echo.Context) error {
	var recs []entities.StaffingRecord
	if err := c.Bind(&recs); err != nil {
		return badJSON(c)
	}
	return replace(c, recs, h.repo.ReplaceStaffing)
}

func (h *SupportingCtrl) ListFacilities(c echo.Context) error {
	return list(c, h.repo.ListFacilities)
}

func (h *SupportingCtrl) CreateFacility(c echo.Context) error {
	var rec entities.FacilityRecord
	if err := c.Bind(&rec); err != nil {
		return badJSON(c)
	}
	if rec.Quantity < 0 {
		return web.JSONError(c, fmt.Errorf("%w: negative quantity", entities.ErrInvalidInput))
	}
	return insert(c, &rec, h.repo.InsertFacility)
}

func (h *SupportingCtrl) ReplaceFacilities(c echo.Context) error {
	var recs []entities.FacilityRecord
	if err := c.Bind(&recs); err != nil {
		return badJSON(c)
	}
	return replace(c, recs, h.repo.ReplaceFacilities)
}

func (h *SupportingCtrl) ListDocuments(c echo.Context) error {
	return list(c, h.repo.ListDocuments)
}

func (h *SupportingCtrl) CreateDocument(c echo.Context) error {
	var rec entities.DocumentRecord
	if err := c.Bind(&rec); err != nil {
		return badJSON(c)
	}
	return insert(c, &rec, h.repo.InsertDocument)
}

func (h *SupportingCtrl) ReplaceDocuments(c echo.Context) error {
	var recs []entities.DocumentRecord
	if err := c.Bind(&recs); err != nil {
		return badJSON(c)
	}
	return replace(c, recs, h.repo.ReplaceDocuments)
}

func badJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
}

func list[T any](c echo.Context, fn func() ([]T, error)) error {
	out, err := fn()
	if err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func insert[T any](c echo.Context, rec *T, fn func(*T) error) error {
	if err := fn(rec); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func replace[T any](c echo.Context, recs []T, fn func([]T) error) error {
	if err := fn(recs); err != nil {
		return web.JSONError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": len(recs)})
}

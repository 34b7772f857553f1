package repositoryImp

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
)

type assetRepo struct {
	db *gorm.DB
	// serializes bulk writes; reads may overlap each other but never a
	// table replace.
	bulkMu sync.Mutex
}

func New(db *gorm.DB) repository.AssetRepository { return &assetRepo{db: db} }

func (r *assetRepo) Create(a *entities.Asset) error {
	if err := r.db.Create(a).Error; err != nil {
		return wrap("create asset", err)
	}
	return nil
}

func (r *assetRepo) Update(a *entities.Asset) error {
	if err := r.db.Save(a).Error; err != nil {
		return wrap("update asset", err)
	}
	return nil
}

func (r *assetRepo) FindByID(id uint) (*entities.Asset, error) {
	var a entities.Asset
	if err := r.db.First(&a, "asset_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %d: %w", id, entities.ErrNotFound)
		}
		return nil, wrap("find asset", err)
	}
	return &a, nil
}

func (r *assetRepo) FindByCode(code string) (*entities.Asset, error) {
	var a entities.Asset
	if err := r.db.First(&a, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", code, entities.ErrNotFound)
		}
		return nil, wrap("find asset", err)
	}
	return &a, nil
}

func (r *assetRepo) List() ([]entities.Asset, error) {
	var out []entities.Asset
	if err := r.db.Order("code").Find(&out).Error; err != nil {
		return nil, wrap("list assets", err)
	}
	return out, nil
}

func (r *assetRepo) Delete(id uint) error {
	r.bulkMu.Lock()
	defer r.bulkMu.Unlock()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Inspection{}, "asset_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.DamageVolume{}, "asset_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Asset{}, "asset_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("asset %d: %w", id, entities.ErrNotFound)
		}
		return nil
	})
	if err != nil && !errors.Is(err, entities.ErrNotFound) {
		return wrap("delete asset", err)
	}
	return err
}

// BulkReplace upserts by code instead of the prototype's delete-all +
// reinsert, so an interruption never leaves the table half-populated and
// surviving rows keep their ids.
func (r *assetRepo) BulkReplace(assets []entities.Asset) error {
	r.bulkMu.Lock()
	defer r.bulkMu.Unlock()

	codes := make([]string, 0, len(assets))
	for _, a := range assets {
		codes = append(codes, a.Code)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range assets {
			a := &assets[i]
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "type", "unit", "built_year", "rehab_year",
					"dimensions", "design_area_ha", "replacement_value",
					"geometry_ref", "updated_at",
				}),
			}).Create(a).Error; err != nil {
				return fmt.Errorf("upsert %s: %w", a.Code, err)
			}
		}
		// cascade before dropping rows that fell out of the set
		var gone []uint
		q := tx.Model(&entities.Asset{})
		if len(codes) > 0 {
			q = q.Where("code NOT IN ?", codes)
		}
		if err := q.Pluck("asset_id", &gone).Error; err != nil {
			return err
		}
		if len(gone) == 0 {
			return nil
		}
		if err := tx.Delete(&entities.Inspection{}, "asset_id IN ?", gone).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.DamageVolume{}, "asset_id IN ?", gone).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Asset{}, "asset_id IN ?", gone).Error
	})
	if err != nil {
		return wrap("bulk replace assets", err)
	}
	return nil
}

func (r *assetRepo) UpsertDamageVolume(dv *entities.DamageVolume) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "asset_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"good_qty", "light_damage_qty", "heavy_damage_qty", "score", "updated_at",
		}),
	}).Create(dv).Error
	if err != nil {
		return wrap("upsert damage volume", err)
	}
	return nil
}

func (r *assetRepo) ListDamageVolumes() ([]entities.DamageVolume, error) {
	var out []entities.DamageVolume
	if err := r.db.Order("asset_id").Find(&out).Error; err != nil {
		return nil, wrap("list damage volumes", err)
	}
	return out, nil
}

func (r *assetRepo) SaveDamageScores(volumes []entities.DamageVolume) error {
	r.bulkMu.Lock()
	defer r.bulkMu.Unlock()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, dv := range volumes {
			if err := tx.Model(&entities.DamageVolume{}).
				Where("asset_id = ?", dv.AssetID).
				Update("score", dv.Score).Error; err != nil {
				return fmt.Errorf("asset %d: %w", dv.AssetID, err)
			}
		}
		return nil
	})
	if err != nil {
		return wrap("save damage scores", err)
	}
	return nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, entities.ErrPersistence, err)
}

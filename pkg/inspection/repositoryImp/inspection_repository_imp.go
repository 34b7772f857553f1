package repositoryImp

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/inspection/repository"
)

type inspectionRepo struct {
	db     *gorm.DB
	bulkMu sync.Mutex
}

func New(db *gorm.DB) repository.InspectionRepository { return &inspectionRepo{db: db} }

func (r *inspectionRepo) Append(ins *entities.Inspection) error {
	ins.InspectionID = 0 // force an insert, history is append-only
	if err := r.db.Create(ins).Error; err != nil {
		return wrap("append inspection", err)
	}
	return nil
}

func (r *inspectionRepo) ListByAsset(assetID uint) ([]entities.Inspection, error) {
	var out []entities.Inspection
	if err := r.db.Where("asset_id = ?", assetID).
		Order("date DESC, inspection_id DESC").Find(&out).Error; err != nil {
		return nil, wrap("list inspections", err)
	}
	return out, nil
}

func (r *inspectionRepo) ListAll() ([]entities.Inspection, error) {
	var out []entities.Inspection
	if err := r.db.Order("asset_id, date").Find(&out).Error; err != nil {
		return nil, wrap("list inspections", err)
	}
	return out, nil
}

func (r *inspectionRepo) LatestPerAsset() ([]entities.Inspection, error) {
	var out []entities.Inspection
	// same-date rows break by the higher id, matching append order
	err := r.db.Raw(`
		SELECT * FROM (
			SELECT i.*, ROW_NUMBER() OVER (
				PARTITION BY asset_id ORDER BY date DESC, inspection_id DESC
			) AS rn FROM inspections i
		) WHERE rn = 1 ORDER BY asset_id`).Scan(&out).Error
	if err != nil {
		return nil, wrap("latest inspections", err)
	}
	return out, nil
}

func (r *inspectionRepo) BulkReplace(records []entities.Inspection) error {
	r.bulkMu.Lock()
	defer r.bulkMu.Unlock()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entities.Inspection{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return wrap("bulk replace inspections", err)
	}
	return nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, entities.ErrPersistence, err)
}

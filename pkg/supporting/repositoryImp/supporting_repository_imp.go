package repositoryImp

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/supporting/repository"
)

type supportingRepo struct {
	db     *gorm.DB
	bulkMu sync.Mutex
}

func New(db *gorm.DB) repository.SupportingRepository { return &supportingRepo{db: db} }

func insertRow[T any](db *gorm.DB, op string, row *T) error {
	if err := db.Create(row).Error; err != nil {
		return fmt.Errorf("%s: %w: %w", op, entities.ErrPersistence, err)
	}
	return nil
}

func listRows[T any](db *gorm.DB, op string) ([]T, error) {
	var out []T
	if err := db.Order("record_id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entities.ErrPersistence, err)
	}
	return out, nil
}

// replaceRows swaps an entire table inside one transaction so a crash never
// leaves it half-populated.
func replaceRows[T any](db *gorm.DB, mu *sync.Mutex, op string, records []T) error {
	mu.Lock()
	defer mu.Unlock()
	err := db.Transaction(func(tx *gorm.DB) error {
		var zero T
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&zero).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, entities.ErrPersistence, err)
	}
	return nil
}

func (r *supportingRepo) InsertPlanting(rec *entities.PlantingRecord) error {
	return insertRow(r.db, "insert planting record", rec)
}
func (r *supportingRepo) ListPlanting() ([]entities.PlantingRecord, error) {
	return listRows[entities.PlantingRecord](r.db, "list planting records")
}
func (r *supportingRepo) ReplacePlanting(records []entities.PlantingRecord) error {
	return replaceRows(r.db, &r.bulkMu, "replace planting records", records)
}

func (r *supportingRepo) InsertAssociation(rec *entities.AssociationRecord) error {
	return insertRow(r.db, "insert association record", rec)
}
func (r *supportingRepo) ListAssociations() ([]entities.AssociationRecord, error) {
	return listRows[entities.AssociationRecord](r.db, "list association records")
}
func (r *supportingRepo) ReplaceAssociations(records []entities.AssociationRecord) error {
	return replaceRows(r.db, &r.bulkMu, "replace association records", records)
}

func (r *supportingRepo) InsertStaffing(rec *entities.StaffingRecord) error {
	return insertRow(r.db, "insert staffing record", rec)
}
func (r *supportingRepo) ListStaffing() ([]entities.StaffingRecord, error) {
	return listRows[entities.StaffingRecord](r.db, "list staffing records")
}
func (r *supportingRepo) ReplaceStaffing(records []entities.StaffingRecord) error {
	return replaceRows(r.db, &r.bulkMu, "replace staffing records", records)
}

func (r *supportingRepo) InsertFacility(rec *entities.FacilityRecord) error {
	return insertRow(r.db, "insert facility record", rec)
}
func (r *supportingRepo) ListFacilities() ([]entities.FacilityRecord, error) {
	return listRows[entities.FacilityRecord](r.db, "list facility records")
}
func (r *supportingRepo) ReplaceFacilities(records []entities.FacilityRecord) error {
	return replaceRows(r.db, &r.bulkMu, "replace facility records", records)
}

func (r *supportingRepo) InsertDocument(rec *entities.DocumentRecord) error {
	return insertRow(r.db, "insert document record", rec)
}
func (r *supportingRepo) ListDocuments() ([]entities.DocumentRecord, error) {
	return listRows[entities.DocumentRecord](r.db, "list document records")
}
func (r *supportingRepo) ReplaceDocuments(records []entities.DocumentRecord) error {
	return replaceRows(r.db, &r.bulkMu, "replace document records", records)
}

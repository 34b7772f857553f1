// Package backup serializes the whole registry into one structured
// document and restores it atomically.
package backup

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

// Document is the full-state snapshot: every table, stamped for audit.
type Document struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Assets       []entities.Asset             `json:"assets"`
	Volumes      []entities.DamageVolume      `json:"damage_volumes"`
	Inspections  []entities.Inspection        `json:"inspections"`
	Planting     []entities.PlantingRecord    `json:"planting_records"`
	Associations []entities.AssociationRecord `json:"association_records"`
	Staffing     []entities.StaffingRecord    `json:"staffing_records"`
	Facilities   []entities.FacilityRecord    `json:"facility_records"`
	Documents    []entities.DocumentRecord    `json:"document_records"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) Export() (Document, error) {
	doc := Document{ID: uuid.NewString(), CreatedAt: time.Now()}

	reads := []struct {
		name string
		dest any
	}{
		{"assets", &doc.Assets},
		{"damage volumes", &doc.Volumes},
		{"inspections", &doc.Inspections},
		{"planting records", &doc.Planting},
		{"association records", &doc.Associations},
		{"staffing records", &doc.Staffing},
		{"facility records", &doc.Facilities},
		{"document records", &doc.Documents},
	}
	for _, r := range reads {
		if err := s.db.Find(r.dest).Error; err != nil {
			return Document{}, fmt.Errorf("export %s: %w: %w", r.name, entities.ErrPersistence, err)
		}
	}
	s.log.Info("backup exported", zap.String("id", doc.ID), zap.Int("assets", len(doc.Assets)))
	return doc, nil
}

// Restore replaces every table with the document's contents inside one
// transaction: it either applies completely or not at all.
func (s *Service) Restore(doc Document) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := restoreTable(tx, doc.Assets); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Volumes); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Inspections); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Planting); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Associations); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Staffing); err != nil {
			return err
		}
		if err := restoreTable(tx, doc.Facilities); err != nil {
			return err
		}
		return restoreTable(tx, doc.Documents)
	})
	if err != nil {
		return fmt.Errorf("restore %s: %w: %w", doc.ID, entities.ErrPersistence, err)
	}
	s.log.Info("backup restored", zap.String("id", doc.ID))
	return nil
}

func restoreTable[T any](tx *gorm.DB, rows []T) error {
	var zero T
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

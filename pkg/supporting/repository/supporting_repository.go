package repository

import "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"

// SupportingRepository stores the four non-physical pillar tables. Each
// table offers insert and a transactional full replace for bulk edits.
type SupportingRepository interface {
	InsertPlanting(r *entities.PlantingRecord) error
	ListPlanting() ([]entities.PlantingRecord, error)
	ReplacePlanting(records []entities.PlantingRecord) error

	InsertAssociation(r *entities.AssociationRecord) error
	ListAssociations() ([]entities.AssociationRecord, error)
	ReplaceAssociations(records []entities.AssociationRecord) error

	InsertStaffing(r *entities.StaffingRecord) error
	ListStaffing() ([]entities.StaffingRecord, error)
	ReplaceStaffing(records []entities.StaffingRecord) error

	InsertFacility(r *entities.FacilityRecord) error
	ListFacilities() ([]entities.FacilityRecord, error)
	ReplaceFacilities(records []entities.FacilityRecord) error

	InsertDocument(r *entities.DocumentRecord) error
	ListDocuments() ([]entities.DocumentRecord, error)
	ReplaceDocuments(records []entities.DocumentRecord) error
}

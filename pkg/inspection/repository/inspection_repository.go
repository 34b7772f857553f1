package repository

import "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"

type InspectionRepository interface {
	// Append inserts a new survey. Existing rows are never touched: the
	// inspection table is the asset's history.
	Append(ins *entities.Inspection) error
	ListByAsset(assetID uint) ([]entities.Inspection, error)
	ListAll() ([]entities.Inspection, error)
	// LatestPerAsset returns each asset's most recent inspection.
	LatestPerAsset() ([]entities.Inspection, error)
	BulkReplace(records []entities.Inspection) error
}

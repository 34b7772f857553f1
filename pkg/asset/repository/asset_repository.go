package repository

import "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"

type AssetRepository interface {
	Create(a *entities.Asset) error
	Update(a *entities.Asset) error
	FindByID(id uint) (*entities.Asset, error)
	FindByCode(code string) (*entities.Asset, error)
	List() ([]entities.Asset, error)
	// Delete cascades to the asset's inspections and damage volume.
	Delete(id uint) error

	// BulkReplace reconciles the master table against the given set:
	// upsert by code, delete codes no longer present, one transaction.
	BulkReplace(assets []entities.Asset) error

	UpsertDamageVolume(dv *entities.DamageVolume) error
	ListDamageVolumes() ([]entities.DamageVolume, error)
	// SaveDamageScores writes recomputed scores back in one transaction.
	SaveDamageScores(volumes []entities.DamageVolume) error
}

package service

import "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"

type AssetService interface {
	Register(a *entities.Asset) (*entities.Asset, error)
	// SetDamageVolume validates the tuple, scores it and stores both.
	SetDamageVolume(assetID uint, good, light, heavy float64) (*entities.DamageVolume, error)
	// RecomputeScores rescores every stored damage volume and persists
	// the results; the prototype called this hitung ulang kinerja.
	RecomputeScores() ([]entities.DamageVolume, error)
}

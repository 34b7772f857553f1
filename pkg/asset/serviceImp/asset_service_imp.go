package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	repo "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/service"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/scoring"
)

type assetSvc struct {
	r      repo.AssetRepository
	scorer *scoring.Scorer
	log    *zap.Logger
}

func New(r repo.AssetRepository, scorer *scoring.Scorer, log *zap.Logger) service.AssetService {
	return &assetSvc{r: r, scorer: scorer, log: log}
}

func (s *assetSvc) Register(a *entities.Asset) (*entities.Asset, error) {
	if a.Code == "" {
		return nil, fmt.Errorf("%w: asset code is required", entities.ErrInvalidInput)
	}
	if a.DesignAreaHa < 0 {
		return nil, fmt.Errorf("%w: design area %.2f ha is negative",
			entities.ErrInvalidInput, a.DesignAreaHa)
	}
	if _, err := s.r.FindByCode(a.Code); err == nil {
		return nil, fmt.Errorf("%w: asset code %s already registered",
			entities.ErrInvalidInput, a.Code)
	} else if !errors.Is(err, entities.ErrNotFound) {
		return nil, err
	}
	if err := s.r.Create(a); err != nil {
		return nil, err
	}
	s.log.Info("asset registered", zap.String("code", a.Code), zap.String("type", a.Type))
	return a, nil
}

func (s *assetSvc) SetDamageVolume(assetID uint, good, light, heavy float64) (*entities.DamageVolume, error) {
	if _, err := s.r.FindByID(assetID); err != nil {
		return nil, err
	}
	score, err := s.scorer.ScoreCondition(good, light, heavy)
	if err != nil {
		return nil, fmt.Errorf("asset %d: %w", assetID, err)
	}
	dv := &entities.DamageVolume{
		AssetID:        assetID,
		GoodQty:        good,
		LightDamageQty: light,
		HeavyDamageQty: heavy,
		Score:          score,
		UpdatedAt:      time.Now(),
	}
	if err := s.r.UpsertDamageVolume(dv); err != nil {
		return nil, err
	}
	return dv, nil
}

func (s *assetSvc) RecomputeScores() ([]entities.DamageVolume, error) {
	volumes, err := s.r.ListDamageVolumes()
	if err != nil {
		return nil, err
	}
	for i := range volumes {
		score, err := s.scorer.ScoreVolume(volumes[i])
		if err != nil {
			// identify the offending row, don't fail the batch silently
			return nil, err
		}
		volumes[i].Score = score
	}
	if err := s.r.SaveDamageScores(volumes); err != nil {
		return nil, err
	}
	s.log.Info("condition scores recomputed", zap.Int("assets", len(volumes)))
	return volumes, nil
}

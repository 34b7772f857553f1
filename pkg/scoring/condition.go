// Package scoring turns raw damage-volume measurements into the
// physical-condition value (nilai kinerja) of an asset.
package scoring

import (
	"fmt"
	"math"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

type Scorer struct {
	wGood  float64
	wLight float64
	wHeavy float64
}

func New(p config.Policy) *Scorer {
	return &Scorer{
		wGood:  p.ConditionWeightGood,
		wLight: p.ConditionWeightLight,
		wHeavy: p.ConditionWeightHeavy,
	}
}

// ScoreCondition is the volume-weighted average over the good (B), lightly
// damaged (RR) and heavily damaged (RB) quantities. A zero total scores 0:
// no measurement means worst case, not a perfect asset. Pure; persisting
// the result is the caller's business.
func (s *Scorer) ScoreCondition(good, light, heavy float64) (float64, error) {
	if good < 0 || light < 0 || heavy < 0 {
		return 0, fmt.Errorf("%w: negative damage volume (B=%.2f RR=%.2f RB=%.2f)",
			entities.ErrInvalidInput, good, light, heavy)
	}
	total := good + light + heavy
	if total == 0 {
		return 0, nil
	}
	return Round2((good*s.wGood + light*s.wLight + heavy*s.wHeavy) / total), nil
}

// ScoreVolume scores one damage-volume row.
func (s *Scorer) ScoreVolume(dv entities.DamageVolume) (float64, error) {
	score, err := s.ScoreCondition(dv.GoodQty, dv.LightDamageQty, dv.HeavyDamageQty)
	if err != nil {
		return 0, fmt.Errorf("asset %d: %w", dv.AssetID, err)
	}
	return score, nil
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

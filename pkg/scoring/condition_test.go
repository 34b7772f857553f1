package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

func defaultScorer(t *testing.T) *Scorer {
	t.Helper()
	pol, err := config.LoadPolicy("")
	require.NoError(t, err)
	return New(pol)
}

func TestScoreConditionZeroTotal(t *testing.T) {
	s := defaultScorer(t)
	score, err := s.ScoreCondition(0, 0, 0)
	require.NoError(t, err)
	// no measurement means worst case, not a perfect asset
	assert.Equal(t, 0.0, score)
}

func TestScoreConditionKnownValues(t *testing.T) {
	s := defaultScorer(t)

	cases := []struct {
		name               string
		good, light, heavy float64
		want               float64
	}{
		{"all good", 10, 0, 0, 100.0},
		{"all heavy", 0, 0, 10, 50.0},
		{"mixed", 5, 3, 2, 81.0}, // (500+210+100)/10
		{"all light", 0, 7, 0, 70.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := s.ScoreCondition(tc.good, tc.light, tc.heavy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, score)
		})
	}
}

func TestScoreConditionBoundedBelowByHeavyWeight(t *testing.T) {
	s := defaultScorer(t)
	tuples := [][3]float64{
		{1, 1, 1}, {0.5, 0, 3}, {100, 0, 0.01}, {0, 12.5, 90},
	}
	for _, tu := range tuples {
		score, err := s.ScoreCondition(tu[0], tu[1], tu[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 50.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestScoreConditionRejectsNegativeVolumes(t *testing.T) {
	s := defaultScorer(t)
	for _, tu := range [][3]float64{{-1, 0, 0}, {0, -0.1, 0}, {5, 3, -2}} {
		_, err := s.ScoreCondition(tu[0], tu[1], tu[2])
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	}
}

func TestScoreVolumeNamesOffendingAsset(t *testing.T) {
	s := defaultScorer(t)
	_, err := s.ScoreVolume(entities.DamageVolume{AssetID: 42, GoodQty: -1})
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.Contains(t, err.Error(), "asset 42")
}

func TestScoreConditionPolicyOverride(t *testing.T) {
	pol, err := config.LoadPolicy("")
	require.NoError(t, err)
	pol.ConditionWeightHeavy = 30
	s := New(pol)

	score, err := s.ScoreCondition(0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 30.0, score)
}

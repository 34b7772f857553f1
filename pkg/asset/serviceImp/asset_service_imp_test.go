package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/config"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/database"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repository"
	assetRepoImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repositoryImp"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/service"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/scoring"
)

func newTestService(t *testing.T) (service.AssetService, repository.AssetRepository) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	pol, err := config.LoadPolicy("")
	require.NoError(t, err)
	repo := assetRepoImp.New(db)
	return New(repo, scoring.New(pol), zap.NewNop()), repo
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(&entities.Asset{Name: "tanpa kode"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Register(&entities.Asset{Code: "S-01", Name: "x", DesignAreaHa: -1})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Register(&entities.Asset{Code: "S-01", Name: "Saluran", DesignAreaHa: 10})
	require.NoError(t, err)

	_, err = svc.Register(&entities.Asset{Code: "S-01", Name: "dobel"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestSetDamageVolumeScoresAndStores(t *testing.T) {
	svc, _ := newTestService(t)
	a, err := svc.Register(&entities.Asset{Code: "S-01", Name: "Saluran"})
	require.NoError(t, err)

	dv, err := svc.SetDamageVolume(a.AssetID, 5, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 81.0, dv.Score)

	_, err = svc.SetDamageVolume(a.AssetID, -1, 0, 0)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.SetDamageVolume(9999, 1, 0, 0)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRecomputeScores(t *testing.T) {
	svc, repo := newTestService(t)
	a, err := svc.Register(&entities.Asset{Code: "S-01", Name: "Saluran"})
	require.NoError(t, err)
	b, err := svc.Register(&entities.Asset{Code: "B-01", Name: "Bendung"})
	require.NoError(t, err)

	// stale scores as the prototype's recompute would find them
	require.NoError(t, repo.UpsertDamageVolume(&entities.DamageVolume{
		AssetID: a.AssetID, GoodQty: 10, Score: 0,
	}))
	require.NoError(t, repo.UpsertDamageVolume(&entities.DamageVolume{
		AssetID: b.AssetID, HeavyDamageQty: 4, Score: 0,
	}))

	volumes, err := svc.RecomputeScores()
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	stored, err := repo.ListDamageVolumes()
	require.NoError(t, err)
	byAsset := map[uint]float64{}
	for _, v := range stored {
		byAsset[v.AssetID] = v.Score
	}
	assert.Equal(t, 100.0, byAsset[a.AssetID])
	assert.Equal(t, 50.0, byAsset[b.AssetID])
}

package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/database"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	return db
}

func TestExportRestoreRoundTrip(t *testing.T) {
	src := openTestDB(t)
	require.NoError(t, src.Create(&entities.Asset{Code: "S-01", Name: "Saluran", DesignAreaHa: 120}).Error)
	require.NoError(t, src.Create(&entities.Inspection{AssetID: 1, Date: time.Now(), Surveyor: "Andi"}).Error)
	require.NoError(t, src.Create(&entities.PlantingRecord{Season: "MT-1", PlannedAreaHa: 100}).Error)
	require.NoError(t, src.Create(&entities.AssociationRecord{Name: "P3A Tirta", LegalStatus: true, ActivityLevel: entities.ActivityActive}).Error)
	require.NoError(t, src.Create(&entities.DocumentRecord{Name: "Skema Jaringan", Present: true}).Error)

	doc, err := New(src, zap.NewNop()).Export()
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Len(t, doc.Assets, 1)
	assert.Len(t, doc.Inspections, 1)

	dst := openTestDB(t)
	// pre-existing garbage must be replaced, not merged
	require.NoError(t, dst.Create(&entities.Asset{Code: "OLD-99", Name: "lama"}).Error)

	require.NoError(t, New(dst, zap.NewNop()).Restore(doc))

	var assets []entities.Asset
	require.NoError(t, dst.Find(&assets).Error)
	require.Len(t, assets, 1)
	assert.Equal(t, "S-01", assets[0].Code)

	var planting []entities.PlantingRecord
	require.NoError(t, dst.Find(&planting).Error)
	require.Len(t, planting, 1)
	assert.Equal(t, "MT-1", planting[0].Season)
}

func TestRestoreEmptyDocumentClearsTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&entities.Asset{Code: "S-01", Name: "Saluran"}).Error)

	require.NoError(t, New(db, zap.NewNop()).Restore(Document{ID: "empty"}))

	var count int64
	require.NoError(t, db.Model(&entities.Asset{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRestoreRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&entities.Asset{Code: "S-01", Name: "asli"}).Error)

	// duplicate codes violate the unique index mid-transaction
	bad := Document{ID: "bad", Assets: []entities.Asset{
		{Code: "X-01", Name: "a"}, {Code: "X-01", Name: "b"},
	}}
	err := New(db, zap.NewNop()).Restore(bad)
	require.ErrorIs(t, err, entities.ErrPersistence)

	var assets []entities.Asset
	require.NoError(t, db.Find(&assets).Error)
	require.Len(t, assets, 1)
	assert.Equal(t, "S-01", assets[0].Code)
}

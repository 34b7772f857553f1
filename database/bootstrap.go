package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
)

// schemaMigration tracks applied versioned steps so each runs exactly once.
type schemaMigration struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

type migrationStep struct {
	Version int
	Name    string
	Run     func(tx *gorm.DB) error
}

// steps must stay append-only with strictly increasing versions.
var steps = []migrationStep{
	{Version: 1, Name: "import legacy aset_fisik table", Run: importLegacyAssetTable},
}

// OpenSQLite opens (creating the parent folder if needed) the single local
// store, automigrates the schema and then applies the versioned steps.
func OpenSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database folder: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&schemaMigration{},
		&entities.Asset{},
		&entities.DamageVolume{},
		&entities.Inspection{},
		&entities.PlantingRecord{},
		&entities.AssociationRecord{},
		&entities.StaffingRecord{},
		&entities.FacilityRecord{},
		&entities.DocumentRecord{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	if err := runMigrations(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func runMigrations(db *gorm.DB, log *zap.Logger) error {
	for _, step := range steps {
		var applied int64
		if err := db.Model(&schemaMigration{}).
			Where("version = ?", step.Version).Count(&applied).Error; err != nil {
			return fmt.Errorf("check migration %d: %w", step.Version, err)
		}
		if applied > 0 {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Run(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{
				Version:   step.Version,
				Name:      step.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", step.Version, step.Name, err)
		}
		if log != nil {
			log.Info("applied schema migration",
				zap.Int("version", step.Version), zap.String("name", step.Name))
		}
	}
	return nil
}

// importLegacyAssetTable copies rows out of the prototype's single
// aset_fisik table into the split assets/damage_volumes schema, then parks
// the old table under a _migrated suffix so a re-run never sees it again.
func importLegacyAssetTable(tx *gorm.DB) error {
	var tbl string
	if err := tx.Raw(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='aset_fisik'`,
	).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type legacyRow struct {
		ID           int64
		KodeAset     string
		NamaAset     string
		JenisAset    string
		Satuan       string
		KondisiB     float64
		KondisiRr    float64
		KondisiRb    float64
		NilaiKinerja float64
	}
	var rows []legacyRow
	if err := tx.Raw(`SELECT id, kode_aset, nama_aset, jenis_aset, satuan,
		kondisi_b, kondisi_rr, kondisi_rb, nilai_kinerja FROM aset_fisik`).
		Scan(&rows).Error; err != nil {
		return fmt.Errorf("read aset_fisik: %w", err)
	}

	for _, r := range rows {
		a := entities.Asset{
			Code: r.KodeAset,
			Name: r.NamaAset,
			Type: r.JenisAset,
			Unit: r.Satuan,
		}
		if a.Code == "" {
			a.Code = fmt.Sprintf("LEGACY-%d", r.ID)
		}
		// the prototype never enforced code uniqueness
		var dup int64
		if err := tx.Model(&entities.Asset{}).Where("code = ?", a.Code).Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			a.Code = fmt.Sprintf("%s-%d", a.Code, r.ID)
		}
		if err := tx.Create(&a).Error; err != nil {
			return fmt.Errorf("copy asset %q: %w", a.Code, err)
		}
		dv := entities.DamageVolume{
			AssetID:        a.AssetID,
			GoodQty:        r.KondisiB,
			LightDamageQty: r.KondisiRr,
			HeavyDamageQty: r.KondisiRb,
			Score:          r.NilaiKinerja,
		}
		if err := tx.Create(&dv).Error; err != nil {
			return fmt.Errorf("copy damage volume for %q: %w", a.Code, err)
		}
	}

	return tx.Exec(`ALTER TABLE aset_fisik RENAME TO aset_fisik_migrated`).Error
}

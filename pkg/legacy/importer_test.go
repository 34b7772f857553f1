package legacy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/database"
	"github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/entities"
	assetRepoImp "github.com/smartstudioarsitek-sudo/IrigasiSmart-PAI/pkg/asset/repositoryImp"
)

func newTestImporter(t *testing.T) (*Importer, func() ([]entities.Asset, error)) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	repo := assetRepoImp.New(db)
	return New(repo, zap.NewNop()), repo.List
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestImportFolder(t *testing.T) {
	im, list := newTestImporter(t)
	dir := t.TempDir()

	writeFile(t, dir, "data_bendung.csv",
		"No;Kode;Nama;Ket\n1;1-1-1-1-01;Bendung Way Seputih;ok\n2;1-1-1-1-02;Bendung Argoguruh;ok\n")
	writeFile(t, dir, "saluran_primer.txt",
		"No;Kode;Nama\n1;2-1-0-0-01;Saluran Primer Kiri\n;;\n2;;nan\n")
	writeFile(t, dir, "readme.md", "not an inventory file")

	sum, err := im.ImportFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Imported)
	assert.Empty(t, sum.FileErrors)

	assets, err := list()
	require.NoError(t, err)
	require.Len(t, assets, 3)

	byCode := map[string]entities.Asset{}
	for _, a := range assets {
		byCode[a.Code] = a
	}
	assert.Equal(t, entities.TypeBendung, byCode["1-1-1-1-01"].Type)
	assert.Equal(t, "Bendung Way Seputih", byCode["1-1-1-1-01"].Name)
	assert.Equal(t, entities.TypeSaluran, byCode["2-1-0-0-01"].Type)
}

func TestImportFolderSkipsDuplicateCodes(t *testing.T) {
	im, list := newTestImporter(t)
	dir := t.TempDir()
	writeFile(t, dir, "data_bendung.csv",
		"header\n1;K-01;Bendung A\n2;K-01;Bendung A lagi\n")

	sum, err := im.ImportFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Imported)

	assets, err := list()
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}

func TestImportFolderMissing(t *testing.T) {
	im, _ := newTestImporter(t)
	_, err := im.ImportFolder(filepath.Join(t.TempDir(), "tidak-ada"))
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, entities.TypeBendung, detectType("Data_BENDUNG_2019.csv"))
	assert.Equal(t, entities.TypeUkur, detectType("bang_ukur_sekunder.xls"))
	assert.Equal(t, entities.TypeGorong, detectType("gorong2.csv"))
	assert.Equal(t, entities.TypeUmum, detectType("lain-lain.csv"))
}

package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"palmtrack/database"
	"palmtrack/entities"
	"palmtrack/pkg/garden/repository"
	"palmtrack/pkg/garden/repositoryImp"
	"palmtrack/pkg/garden/service"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newSvc(t *testing.T) (service.GardenService, *gorm.DB) {
	db := openTestDB(t)
	return NewGardenService(repositoryImp.New(db)), db
}

func TestCreateDerivesSlug(t *testing.T) {
	svc, _ := newSvc(t)
	g, err := svc.Create(service.GardenInput{Name: "Kebun Sawit A", Location: "Riau"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "kebun-sawit-a", g.Slug)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, entities.GardenStatusGood, g.Status)
	assert.Equal(t, "u1", g.CreatedBy)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newSvc(t)
	_, err := svc.Create(service.GardenInput{Name: "Kebun Sawit A"}, "")
	require.NoError(t, err)
	_, err = svc.Create(service.GardenInput{Name: "Kebun Sawit A"}, "")
	assert.ErrorContains(t, err, "already in use")
}

func TestResolveSlugAndCanonical(t *testing.T) {
	svc, _ := newSvc(t)
	g, err := svc.Create(service.GardenInput{Name: "Kebun B"}, "")
	require.NoError(t, err)

	// canonical id resolves to itself
	id, err := svc.Resolve(g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, id)

	// slug resolves to the same id
	id, err = svc.Resolve(g.Slug)
	require.NoError(t, err)
	assert.Equal(t, g.ID, id)
}

func TestResolveCanonicalSkipsLookup(t *testing.T) {
	// a syntactically canonical id resolves unchanged even when no row exists
	svc, _ := newSvc(t)
	id, err := svc.Resolve("b4f9c1de-5a2e-4f7b-9c3d-8e1a2b3c4d5e")
	require.NoError(t, err)
	assert.Equal(t, "b4f9c1de-5a2e-4f7b-9c3d-8e1a2b3c4d5e", id)
}

func TestResolveUnknownSlug(t *testing.T) {
	svc, _ := newSvc(t)
	_, err := svc.Resolve("no-such-garden")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Resolve("Not A Slug!!")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRenameRegeneratesSlugKeepsID(t *testing.T) {
	svc, _ := newSvc(t)
	g, err := svc.Create(service.GardenInput{Name: "Kebun Lama"}, "")
	require.NoError(t, err)

	updated, err := svc.Update(g.Slug, service.GardenInput{Name: "Kebun Baru"})
	require.NoError(t, err)
	assert.Equal(t, g.ID, updated.ID)
	assert.Equal(t, "kebun-baru", updated.Slug)

	// the old slug no longer resolves
	_, err = svc.Resolve("kebun-lama")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCascadesChildren(t *testing.T) {
	svc, db := newSvc(t)
	g, err := svc.Create(service.GardenInput{Name: "Kebun C"}, "")
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.Task{GardenID: g.ID, Title: "Pupuk blok 1"}).Error)
	require.NoError(t, db.Create(&entities.Expense{GardenID: g.ID, Amount: 1000}).Error)

	require.NoError(t, svc.Delete(g.Slug))

	var n int64
	db.Model(&entities.Task{}).Where("garden_id = ?", g.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&entities.Expense{}).Where("garden_id = ?", g.ID).Count(&n)
	assert.Zero(t, n)
	_, err = svc.Get(g.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"palmtrack/database"
	"palmtrack/entities"
	"palmtrack/pkg/harvest/repositoryImp"
	"palmtrack/pkg/harvest/service"
)

func newSvc(t *testing.T) service.HarvestService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewHarvestService(repositoryImp.New(db))
}

func TestCreateRecomputesTotalValue(t *testing.T) {
	svc := newSvc(t)
	h, err := svc.Create(&entities.Harvest{
		GardenID:   "g1",
		QuantityKg: 1500,
		PricePerKg: 2500,
		TotalValue: 1, // bogus client value, must be ignored
		Quality:    entities.HarvestQualityGood,
	})
	require.NoError(t, err)
	assert.Equal(t, 3750000.0, h.TotalValue)
}

func TestUpdateRecomputesTotalValue(t *testing.T) {
	svc := newSvc(t)
	h, err := svc.Create(&entities.Harvest{GardenID: "g1", QuantityKg: 1000, PricePerKg: 2000})
	require.NoError(t, err)

	qty := 1200.0
	bogus := "2024-02-29"
	got, err := svc.Update(h.ID, service.HarvestPatch{QuantityKg: &qty, Date: &bogus})
	require.NoError(t, err)
	assert.Equal(t, 2400000.0, got.TotalValue)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestCreateValidates(t *testing.T) {
	svc := newSvc(t)
	_, err := svc.Create(&entities.Harvest{GardenID: "g1"})
	assert.ErrorContains(t, err, "quantity_kg")
	_, err = svc.Create(&entities.Harvest{QuantityKg: 10})
	assert.ErrorContains(t, err, "garden_id")
}

func TestStatsByGarden(t *testing.T) {
	svc := newSvc(t)
	_, err := svc.Create(&entities.Harvest{GardenID: "g1", QuantityKg: 1000, PricePerKg: 2000, Quality: entities.HarvestQualityExcellent})
	require.NoError(t, err)
	_, err = svc.Create(&entities.Harvest{GardenID: "g1", QuantityKg: 1000, PricePerKg: 3000, Quality: entities.HarvestQualityPoor})
	require.NoError(t, err)
	_, err = svc.Create(&entities.Harvest{GardenID: "g2", QuantityKg: 5, PricePerKg: 5})
	require.NoError(t, err)

	st, err := svc.StatsByGarden("g1")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 2000.0, st.TotalKg)
	assert.Equal(t, 5000000.0, st.TotalValue)
	assert.InDelta(t, 2500, st.AvgPricePerKg, 1e-9)
	assert.InDelta(t, 50, st.GoodQualityPct, 1e-9)
}

func TestStatsEmptyGarden(t *testing.T) {
	svc := newSvc(t)
	st, err := svc.StatsByGarden("nope")
	require.NoError(t, err)
	assert.Zero(t, st.Count)
	assert.Zero(t, st.AvgPricePerKg)
	assert.Zero(t, st.GoodQualityPct)
}

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
	"palmtrack/pkg/issue/repository"
	"palmtrack/pkg/issue/repositoryImp"
	"palmtrack/pkg/issue/service"
)

func newSvc(t *testing.T, now time.Time) service.IssueService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewWithClock(repositoryImp.New(db), func() time.Time { return now })
}

func TestResolveSetsAndReopenClearsDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := newSvc(t, now)

	i, err := svc.Create(&entities.Issue{GardenID: "g1", Title: "Hama tikus", Severity: entities.IssueSeverityModerate})
	require.NoError(t, err)
	assert.Equal(t, entities.IssueStatusOpen, i.Status)
	assert.Nil(t, i.ResolvedAt)

	resolved, err := svc.SetStatus(i.ID, entities.IssueStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	assert.True(t, resolved.ResolvedAt.Equal(now))

	reopened, err := svc.SetStatus(i.ID, entities.IssueStatusOpen)
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := newSvc(t, time.Now())
	i, err := svc.Create(&entities.Issue{GardenID: "g1", Title: "Drainase"})
	require.NoError(t, err)
	_, err = svc.SetStatus(i.ID, "Pending")
	assert.ErrorContains(t, err, "invalid issue status")
}

func TestSetStatusMissingIssue(t *testing.T) {
	svc := newSvc(t, time.Now())
	_, err := svc.SetStatus("nope", entities.IssueStatusResolved)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateDefaultsReportDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := newSvc(t, now)
	i, err := svc.Create(&entities.Issue{GardenID: "g1", Title: "Gulma"})
	require.NoError(t, err)
	assert.True(t, i.ReportedAt.Equal(now))
}

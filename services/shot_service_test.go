package services

import (
	"testing"
	"time"

	"github.com/hukuhuku/shot-tracker/models"
	"github.com/hukuhuku/shot-tracker/repositories"
	"github.com/hukuhuku/shot-tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// an in-memory sqlite DB exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ShotRecord{}, &models.UserSetting{}))
	return db
}

func day(s string) time.Time {
	d, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecordShotsInsertsNewRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	d := day("2024-03-10")
	record, err := svc.RecordShots("user-1", ShotInput{
		Date:     &d,
		ZoneID:   "Mid-Top",
		Category: "Mid",
		Makes:    7,
		Attempts: 10,
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "Mid-Top", record.ZoneID)
	assert.Equal(t, "Mid", record.Category)
	assert.Equal(t, 7, record.Makes)
	assert.Equal(t, 10, record.Attempts)
	assert.True(t, record.Date.Equal(d))

	var count int64
	db.Model(&models.ShotRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordShotsDefaultsDateToToday(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	record, err := svc.RecordShots("user-1", ShotInput{
		ZoneID:   "Paint",
		Category: "Mid",
		Makes:    3,
		Attempts: 5,
	})
	require.NoError(t, err)
	assert.True(t, record.Date.Equal(utils.Today()))
}

func TestRecordShotsUpdatesExistingRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	d := day("2024-03-10")
	first, err := svc.RecordShots("user-1", ShotInput{
		Date: &d, ZoneID: "Mid-Top", Category: "Mid", Makes: 7, Attempts: 10,
	})
	require.NoError(t, err)

	second, err := svc.RecordShots("user-1", ShotInput{
		Date: &d, ZoneID: "Mid-Top", Category: "3PT", Makes: 9, Attempts: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "3PT", second.Category)
	assert.Equal(t, 9, second.Makes)
	assert.Equal(t, 12, second.Attempts)
	assert.Equal(t, "user-1", second.UserID)
	assert.True(t, second.Date.Equal(d))

	var count int64
	db.Model(&models.ShotRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordShotsDistinctKeysDistinctRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	d := day("2024-03-10")
	other := day("2024-03-11")

	_, err := svc.RecordShots("user-1", ShotInput{Date: &d, ZoneID: "Paint", Category: "Mid", Makes: 1, Attempts: 2})
	require.NoError(t, err)
	_, err = svc.RecordShots("user-1", ShotInput{Date: &d, ZoneID: "Mid-Top", Category: "Mid", Makes: 1, Attempts: 2})
	require.NoError(t, err)
	_, err = svc.RecordShots("user-1", ShotInput{Date: &other, ZoneID: "Paint", Category: "Mid", Makes: 1, Attempts: 2})
	require.NoError(t, err)
	_, err = svc.RecordShots("user-2", ShotInput{Date: &d, ZoneID: "Paint", Category: "Mid", Makes: 1, Attempts: 2})
	require.NoError(t, err)

	var count int64
	db.Model(&models.ShotRecord{}).Count(&count)
	assert.EqualValues(t, 4, count)
}

func TestRecordShotsRejectsMakesOverAttempts(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	_, err := svc.RecordShots("user-1", ShotInput{
		ZoneID: "Paint", Category: "Mid", Makes: 6, Attempts: 5,
	})
	assert.ErrorIs(t, err, ErrMakesExceedAttempts)

	var count int64
	db.Model(&models.ShotRecord{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

// racingShotRepository reports not-found on the first FindOne, simulating
// a concurrent writer that inserts between the lookup and the insert.
type racingShotRepository struct {
	repositories.ShotRepository
	missed bool
}

func (r *racingShotRepository) FindOne(userID string, date time.Time, zoneID string) (*models.ShotRecord, error) {
	if !r.missed {
		r.missed = true
		return nil, gorm.ErrRecordNotFound
	}
	return r.ShotRepository.FindOne(userID, date, zoneID)
}

func TestRecordShotsRecoversFromInsertRace(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewShotRepository(db)
	svc := NewShotService(&racingShotRepository{ShotRepository: repo})

	d := day("2024-03-10")
	winner := models.ShotRecord{
		UserID: "user-1", Date: d, ZoneID: "Paint", Category: "Mid", Makes: 2, Attempts: 4,
	}
	require.NoError(t, db.Create(&winner).Error)

	record, err := svc.RecordShots("user-1", ShotInput{
		Date: &d, ZoneID: "Paint", Category: "3PT", Makes: 8, Attempts: 11,
	})
	require.NoError(t, err)

	assert.Equal(t, winner.ID, record.ID)
	assert.Equal(t, 8, record.Makes)
	assert.Equal(t, 11, record.Attempts)
	assert.Equal(t, "3PT", record.Category)

	var count int64
	db.Model(&models.ShotRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestHistoryQueryPrecedence(t *testing.T) {
	db := newTestDB(t)
	svc := NewShotService(repositories.NewShotRepository(db))

	seed := func(dateStr, zone string) {
		d := day(dateStr)
		_, err := svc.RecordShots("user-1", ShotInput{Date: &d, ZoneID: zone, Category: "Mid", Makes: 1, Attempts: 2})
		require.NoError(t, err)
	}
	seed("2024-01-01", "Paint")
	seed("2024-01-02", "Paint")
	seed("2024-01-02", "Mid-Top")
	seed("2024-01-05", "Paint")

	// a different user's records never leak in
	otherDay := day("2024-01-02")
	_, err := svc.RecordShots("user-2", ShotInput{Date: &otherDay, ZoneID: "Paint", Category: "Mid", Makes: 1, Attempts: 2})
	require.NoError(t, err)

	t.Run("single date wins over range", func(t *testing.T) {
		d := day("2024-01-02")
		start := day("2024-01-01")
		records, err := svc.History("user-1", &d, &start, nil)
		require.NoError(t, err)
		assert.Len(t, records, 2)
		for _, r := range records {
			assert.True(t, r.Date.Equal(d))
		}
	})

	t.Run("inclusive range", func(t *testing.T) {
		start := day("2024-01-02")
		end := day("2024-01-05")
		records, err := svc.History("user-1", nil, &start, &end)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("open-ended range reaches today", func(t *testing.T) {
		start := day("2024-01-01")
		records, err := svc.History("user-1", nil, &start, nil)
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		records, err := svc.History("user-1", nil, nil, nil)
		require.NoError(t, err)
		require.Len(t, records, 4)
		for i := 1; i < len(records); i++ {
			assert.False(t, records[i-1].Date.Before(records[i].Date))
		}
	})
}

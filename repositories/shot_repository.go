package repositories

import (
	"time"

	"github.com/hukuhuku/shot-tracker/models"

	"gorm.io/gorm"
)

// ShotRepository is the data-access contract for shot records. The upsert
// in services.ShotService is built on FindOne + Save.
type ShotRepository interface {
	// FindByUser returns all of a user's records, newest date first.
	FindByUser(userID string) ([]models.ShotRecord, error)
	// FindByUserAndDate returns all zone records for one day.
	FindByUserAndDate(userID string, date time.Time) ([]models.ShotRecord, error)
	// FindByUserAndDateRange returns records with start <= date <= end,
	// newest date first.
	FindByUserAndDateRange(userID string, start, end time.Time) ([]models.ShotRecord, error)
	// FindOne looks up the single record for (user, date, zone).
	// Returns gorm.ErrRecordNotFound when absent.
	FindOne(userID string, date time.Time, zoneID string) (*models.ShotRecord, error)
	// Save inserts when the record has no ID yet, otherwise updates the
	// existing row.
	Save(record *models.ShotRecord) error
}

type shotRepository struct {
	db *gorm.DB
}

func NewShotRepository(db *gorm.DB) ShotRepository {
	return &shotRepository{db: db}
}

func (r *shotRepository) FindByUser(userID string) ([]models.ShotRecord, error) {
	var records []models.ShotRecord
	err := r.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&records).Error
	return records, err
}

func (r *shotRepository) FindByUserAndDate(userID string, date time.Time) ([]models.ShotRecord, error) {
	var records []models.ShotRecord
	err := r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Find(&records).Error
	return records, err
}

func (r *shotRepository) FindByUserAndDateRange(userID string, start, end time.Time) ([]models.ShotRecord, error) {
	var records []models.ShotRecord
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date desc").
		Find(&records).Error
	return records, err
}

func (r *shotRepository) FindOne(userID string, date time.Time, zoneID string) (*models.ShotRecord, error) {
	var record models.ShotRecord
	err := r.db.
		Where("user_id = ? AND date = ? AND zone_id = ?", userID, date, zoneID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *shotRepository) Save(record *models.ShotRecord) error {
	return r.db.Save(record).Error
}

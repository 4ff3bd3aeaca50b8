package services

import (
	"errors"
	"time"

	"github.com/hukuhuku/shot-tracker/models"
	"github.com/hukuhuku/shot-tracker/repositories"
	"github.com/hukuhuku/shot-tracker/utils"

	"gorm.io/gorm"
)

// ErrMakesExceedAttempts rejects records claiming more makes than attempts.
var ErrMakesExceedAttempts = errors.New("makes must not exceed attempts")

// ShotInput is the client-supplied portion of a shot record. The date is
// optional and defaults to today; the user ID is never taken from input.
type ShotInput struct {
	Date     *time.Time
	ZoneID   string
	Category string
	Makes    int
	Attempts int
}

// ShotService owns the upsert and history queries over shot records.
type ShotService struct {
	Shots repositories.ShotRepository
}

func NewShotService(shots repositories.ShotRepository) *ShotService {
	return &ShotService{Shots: shots}
}

// RecordShots upserts a day's shooting result for one court zone. The row
// is keyed by (user, date, zone): an existing row keeps its identity and
// has makes/attempts/category overwritten, otherwise a new row is
// inserted. A unique index backs the key, so two concurrent inserts for
// the same triple resolve to a single row: the loser sees a duplicate-key
// error, refetches the winner's row and applies the update path.
func (s *ShotService) RecordShots(userID string, input ShotInput) (*models.ShotRecord, error) {
	if input.Makes > input.Attempts {
		return nil, ErrMakesExceedAttempts
	}

	date := utils.Today()
	if input.Date != nil {
		date = utils.DayStartLocal(*input.Date)
	}

	existing, err := s.Shots.FindOne(userID, date, input.ZoneID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Makes = input.Makes
		existing.Attempts = input.Attempts
		existing.Category = input.Category
		if err := s.Shots.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	record := &models.ShotRecord{
		UserID:   userID,
		Date:     date,
		ZoneID:   input.ZoneID,
		Category: input.Category,
		Makes:    input.Makes,
		Attempts: input.Attempts,
	}
	if err := s.Shots.Save(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.updateExisting(userID, date, input)
		}
		return nil, err
	}
	return record, nil
}

// updateExisting is the recovery path after losing an insert race.
func (s *ShotService) updateExisting(userID string, date time.Time, input ShotInput) (*models.ShotRecord, error) {
	existing, err := s.Shots.FindOne(userID, date, input.ZoneID)
	if err != nil {
		return nil, err
	}
	existing.Makes = input.Makes
	existing.Attempts = input.Attempts
	existing.Category = input.Category
	if err := s.Shots.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// History returns a user's records with the query precedence
// date > start/end range > everything. A range without an end reaches
// through today.
func (s *ShotService) History(userID string, date, start, end *time.Time) ([]models.ShotRecord, error) {
	switch {
	case date != nil:
		return s.Shots.FindByUserAndDate(userID, utils.DayStartLocal(*date))
	case start != nil:
		rangeEnd := utils.Today()
		if end != nil {
			rangeEnd = utils.DayStartLocal(*end)
		}
		return s.Shots.FindByUserAndDateRange(userID, utils.DayStartLocal(*start), rangeEnd)
	default:
		return s.Shots.FindByUser(userID)
	}
}

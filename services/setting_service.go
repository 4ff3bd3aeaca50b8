package services

import (
	"errors"

	"github.com/hukuhuku/shot-tracker/models"
	"github.com/hukuhuku/shot-tracker/repositories"

	"gorm.io/gorm"
)

// SettingService manages the single goal-percentage row per user.
type SettingService struct {
	Settings repositories.UserSettingRepository
}

func NewSettingService(settings repositories.UserSettingRepository) *SettingService {
	return &SettingService{Settings: settings}
}

// Get returns the user's goal percentage, or nil when never set or cleared.
func (s *SettingService) Get(userID string) (*int, error) {
	setting, err := s.Settings.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return setting.GoalPct, nil
}

// Set finds or creates the user's settings row, overwrites the goal
// percentage (nil clears it) and returns the stored value. The unique
// user_id index resolves a first-save race the same way the shot upsert
// does: the losing insert refetches and updates.
func (s *SettingService) Set(userID string, goalPct *int) (*int, error) {
	setting, err := s.Settings.FindByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = &models.UserSetting{UserID: userID}
	}

	setting.GoalPct = goalPct
	if err := s.Settings.Save(setting); err != nil {
		if setting.ID == 0 && errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.Settings.FindByUser(userID)
			if ferr != nil {
				return nil, ferr
			}
			existing.GoalPct = goalPct
			if serr := s.Settings.Save(existing); serr != nil {
				return nil, serr
			}
			return existing.GoalPct, nil
		}
		return nil, err
	}
	return setting.GoalPct, nil
}

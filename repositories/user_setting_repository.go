package repositories

import (
	"github.com/hukuhuku/shot-tracker/models"

	"gorm.io/gorm"
)

// UserSettingRepository is the data-access contract for the one-row-per-user
// settings table.
type UserSettingRepository interface {
	// FindByUser returns the user's settings row, or gorm.ErrRecordNotFound.
	FindByUser(userID string) (*models.UserSetting, error)
	// Save inserts when the row has no ID yet, otherwise updates it.
	Save(setting *models.UserSetting) error
}

type userSettingRepository struct {
	db *gorm.DB
}

func NewUserSettingRepository(db *gorm.DB) UserSettingRepository {
	return &userSettingRepository{db: db}
}

func (r *userSettingRepository) FindByUser(userID string) (*models.UserSetting, error) {
	var setting models.UserSetting
	err := r.db.Where("user_id = ?", userID).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *userSettingRepository) Save(setting *models.UserSetting) error {
	return r.db.Save(setting).Error
}

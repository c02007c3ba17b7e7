package repositories

import (
	"github.com/lukav-dev/userbase/internal/models"
	"gorm.io/gorm"
)

// UpdateFields carries the subset of user columns present in an update
// request. Nil fields keep their stored values.
type UpdateFields struct {
	Name      *string
	Surname   *string
	Gender    *string
	IsTrusted *bool
}

// UserStore is the persistence contract the handlers are written against.
// The by-id primitives report a missing row as gorm.ErrRecordNotFound.
type UserStore interface {
	Insert(user *models.User) error
	SelectAll() ([]models.User, error)
	SelectByID(id int) (*models.User, error)
	UpdateByID(id int, fields UpdateFields) (*models.User, error)
	DeleteByID(id int) error
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

// Insert assigns id, createdAt and updatedAt; both timestamps are equal
// after a create.
func (s *userStore) Insert(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) SelectAll() ([]models.User, error) {
	users := make([]models.User, 0)
	// ids are never reused, so id order equals creation order
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *userStore) SelectByID(id int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID merges the present fields onto the stored record. Save writes
// every column, so updatedAt is refreshed even for an empty patch.
func (s *userStore) UpdateByID(id int, fields UpdateFields) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	if fields.Name != nil {
		user.Name = *fields.Name
	}
	if fields.Surname != nil {
		user.Surname = *fields.Surname
	}
	if fields.Gender != nil {
		user.Gender = *fields.Gender
	}
	if fields.IsTrusted != nil {
		user.IsTrusted = *fields.IsTrusted
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) DeleteByID(id int) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"github.com/fadilmartias/career-platform/internal/model"
	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db}
}

func (r *StaffRepository) CreateStaff(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *StaffRepository) UpdateStaff(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *StaffRepository) FindStaffByID(id string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *StaffRepository) FindStaffByUsername(username string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.First(&s, "username = ?", username).Error
	return &s, err
}

func (r *StaffRepository) FindStaffByUsernameOrEmail(identifier string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.First(&s, "username = ? OR email = ?", identifier, identifier).Error
	return &s, err
}

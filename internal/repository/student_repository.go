package repository

import (
	"github.com/fadilmartias/career-platform/internal/model"
	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db}
}

func (r *StudentRepository) CreateStudent(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepository) UpdateStudent(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *StudentRepository) FindStudentByID(id string) (*model.Student, error) {
	var s model.Student
	err := r.db.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *StudentRepository) GetStudents(page, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64
	if err := r.db.Model(&model.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at ASC").Offset((page - 1) * limit).Limit(limit).Find(&students).Error
	return students, total, err
}

func (r *StudentRepository) GetStudentsBySchool(school string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.Where("school = ?", school).Find(&students).Error
	return students, err
}

func (r *StudentRepository) CountStudentsBySchool(school string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Where("school = ?", school).Count(&count).Error
	return count, err
}

// CountPlacedStudentsBySchool counts distinct students in the school that
// have at least one match, regardless of match state.
func (r *StudentRepository) CountPlacedStudentsBySchool(school string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).
		Distinct("students.id").
		Joins("JOIN matches ON matches.student_id = students.id").
		Where("students.school = ?", school).
		Count(&count).Error
	return count, err
}

// Matches are not cascaded on delete; dangling rows are tolerated.
func (r *StudentRepository) DeleteStudent(id string) error {
	return r.db.Delete(&model.Student{}, "id = ?", id).Error
}

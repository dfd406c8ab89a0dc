package repository

import (
	"github.com/fadilmartias/career-platform/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) UpdateJob(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindJobByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) GetJobs(page, limit int) ([]model.Job, int64, error) {
	var jobs []model.Job
	var total int64
	if err := r.db.Model(&model.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at ASC").Offset((page - 1) * limit).Limit(limit).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) GetAllJobs() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Order("created_at ASC").Find(&jobs).Error
	return jobs, err
}

// Matches referencing the job are left in place; see the match model notes.
func (r *JobRepository) DeleteJob(id string) error {
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}

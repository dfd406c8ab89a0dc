package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/career-platform/internal/model"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobRepo JobRepo
}

func NewJobUsecase(jobRepo JobRepo) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

func (uc *JobUsecase) CreateJob(ctx context.Context, title, description string) (*model.Job, error) {
	job := &model.Job{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) UpdateJob(ctx context.Context, id, title, description string) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	job.Title = title
	job.Description = description
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.UpdateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) DeleteJob(ctx context.Context, id string) error {
	if _, err := uc.jobRepo.FindJobByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.jobRepo.DeleteJob(id)
}

func (uc *JobUsecase) GetJob(ctx context.Context, id string) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) GetJobs(ctx context.Context, page, limit int) ([]model.Job, int64, error) {
	return uc.jobRepo.GetJobs(page, limit)
}

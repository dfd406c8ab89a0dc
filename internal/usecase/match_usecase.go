package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/service"
	"github.com/fadilmartias/career-platform/internal/util"
	"gorm.io/gorm"
)

type MatchUsecase struct {
	matchRepo   MatchRepo
	studentRepo StudentRepo
	jobRepo     JobRepo
	vectors     VectorStore
	provider    service.EmbeddingProvider
}

func NewMatchUsecase(matchRepo MatchRepo, studentRepo StudentRepo, jobRepo JobRepo, vectors VectorStore, provider service.EmbeddingProvider) *MatchUsecase {
	return &MatchUsecase{
		matchRepo:   matchRepo,
		studentRepo: studentRepo,
		jobRepo:     jobRepo,
		vectors:     vectors,
		provider:    provider,
	}
}

// CreateMatch scores a student against a job and persists the result in the
// queued state. The student vector comes from the cache (miss means empty);
// the job vector is computed fresh from the description on every call. Both
// lookups degrade to an empty vector, which scores 0.0. The persist is the
// last step, so a failure before it leaves no record behind.
func (uc *MatchUsecase) CreateMatch(ctx context.Context, studentID, jobID string) (*model.Match, error) {
	student, err := uc.studentRepo.FindStudentByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	studentEmb, err := uc.vectors.GetEmbedding(ctx, student.ID)
	if err != nil {
		log.Printf("embedding cache read failed for student %s: %v", student.ID, err)
		studentEmb = nil
	}

	jobEmb, err := uc.provider.Embed(ctx, job.Description)
	if err != nil {
		if !errors.Is(err, service.ErrProviderDisabled) {
			log.Printf("job embedding failed for job %s: %v", job.ID, err)
		}
		jobEmb = nil
	}

	match := &model.Match{
		StudentID: student.ID,
		JobID:     job.ID,
		Score:     util.CosineSimilarity(studentEmb, jobEmb),
		CreatedAt: time.Now(),
	}
	if err := uc.matchRepo.CreateMatch(match); err != nil {
		return nil, err
	}
	return match, nil
}

// Finalize sets the finalized flag. One-way and idempotent: finalizing an
// already finalized match succeeds without touching the row again.
func (uc *MatchUsecase) Finalize(ctx context.Context, matchID string) (*model.Match, error) {
	return uc.setFlag(matchID, func(m *model.Match) bool {
		if m.Finalized {
			return false
		}
		m.Finalized = true
		return true
	})
}

// Archive sets the archived flag, independent of finalized.
func (uc *MatchUsecase) Archive(ctx context.Context, matchID string) (*model.Match, error) {
	return uc.setFlag(matchID, func(m *model.Match) bool {
		if m.Archived {
			return false
		}
		m.Archived = true
		return true
	})
}

func (uc *MatchUsecase) setFlag(matchID string, apply func(*model.Match) bool) (*model.Match, error) {
	match, err := uc.matchRepo.FindMatchByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !apply(match) {
		return match, nil
	}
	if err := uc.matchRepo.UpdateMatch(match); err != nil {
		return nil, err
	}
	return match, nil
}

// ListQueued returns a job's active matches, best score first.
func (uc *MatchUsecase) ListQueued(ctx context.Context, jobID string) ([]model.Match, error) {
	if _, err := uc.jobRepo.FindJobByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.matchRepo.GetQueuedMatches(jobID)
}

// JobQueue pairs a job with its queued matches for the admin view.
type JobQueue struct {
	Job     model.Job     `json:"job"`
	Matches []model.Match `json:"matches"`
}

// QueuedByJob builds the admin matches view: every job with its queued
// matches, scores descending.
func (uc *MatchUsecase) QueuedByJob(ctx context.Context) ([]JobQueue, error) {
	jobs, err := uc.jobRepo.GetAllJobs()
	if err != nil {
		return nil, err
	}
	queues := make([]JobQueue, 0, len(jobs))
	for _, job := range jobs {
		matches, err := uc.matchRepo.GetQueuedMatches(job.ID.String())
		if err != nil {
			return nil, err
		}
		queues = append(queues, JobQueue{Job: job, Matches: matches})
	}
	return queues, nil
}

func (uc *MatchUsecase) GetMatches(ctx context.Context) ([]model.Match, error) {
	return uc.matchRepo.GetMatches()
}

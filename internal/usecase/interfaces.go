package usecase

import (
	"context"

	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/google/uuid"
)

// Store interfaces consumed by the usecases. The GORM repositories satisfy
// them; tests substitute in-memory fakes.

type StaffRepo interface {
	CreateStaff(staff *model.Staff) error
	UpdateStaff(staff *model.Staff) error
	FindStaffByID(id string) (*model.Staff, error)
	FindStaffByUsername(username string) (*model.Staff, error)
}

type StudentRepo interface {
	CreateStudent(student *model.Student) error
	UpdateStudent(student *model.Student) error
	FindStudentByID(id string) (*model.Student, error)
	GetStudents(page, limit int) ([]model.Student, int64, error)
	GetStudentsBySchool(school string) ([]model.Student, error)
	CountStudentsBySchool(school string) (int64, error)
	CountPlacedStudentsBySchool(school string) (int64, error)
	DeleteStudent(id string) error
}

type JobRepo interface {
	CreateJob(job *model.Job) error
	UpdateJob(job *model.Job) error
	FindJobByID(id string) (*model.Job, error)
	GetJobs(page, limit int) ([]model.Job, int64, error)
	GetAllJobs() ([]model.Job, error)
	DeleteJob(id string) error
}

type MatchRepo interface {
	CreateMatch(match *model.Match) error
	UpdateMatch(match *model.Match) error
	FindMatchByID(id string) (*model.Match, error)
	GetMatches() ([]model.Match, error)
	GetQueuedMatches(jobID string) ([]model.Match, error)
	GetMatchesByJob(jobID string) ([]model.Match, error)
	FirstMatchForStudent(studentID string) (*model.Match, error)
	AvgFinalizedScore() (float64, bool, error)
}

// VectorStore is the Redis-backed embedding cache plus the reset-token
// namespace it shares.
type VectorStore interface {
	StoreEmbedding(ctx context.Context, studentID uuid.UUID, embedding []float32) error
	GetEmbedding(ctx context.Context, studentID uuid.UUID) ([]float32, error)
	DeleteEmbedding(ctx context.Context, studentID uuid.UUID) error
	StoreResetToken(ctx context.Context, token string, staffID uuid.UUID) error
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

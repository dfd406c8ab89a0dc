package repository

import (
	"errors"

	"github.com/fadilmartias/career-platform/internal/model"
	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db}
}

func (r *MatchRepository) CreateMatch(match *model.Match) error {
	return r.db.Create(match).Error
}

func (r *MatchRepository) UpdateMatch(match *model.Match) error {
	return r.db.Save(match).Error
}

func (r *MatchRepository) FindMatchByID(id string) (*model.Match, error) {
	var m model.Match
	err := r.db.First(&m, "id = ?", id).Error
	return &m, err
}

func (r *MatchRepository) GetMatches() ([]model.Match, error) {
	var matches []model.Match
	err := r.db.Order("created_at ASC").Find(&matches).Error
	return matches, err
}

// GetQueuedMatches returns active matches for a job: both lifecycle flags
// false, best score first, creation order breaking ties.
func (r *MatchRepository) GetQueuedMatches(jobID string) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.
		Where("job_id = ? AND finalized = ? AND archived = ?", jobID, false, false).
		Order("score DESC, created_at ASC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepository) GetMatchesByJob(jobID string) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&matches).Error
	return matches, err
}

// FirstMatchForStudent returns the student's earliest match, or nil when the
// student has none.
func (r *MatchRepository) FirstMatchForStudent(studentID string) (*model.Match, error) {
	var m model.Match
	err := r.db.Where("student_id = ?", studentID).Order("created_at ASC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AvgFinalizedScore averages scores over finalized matches across all jobs.
// Returns ok=false when nothing is finalized.
func (r *MatchRepository) AvgFinalizedScore() (float64, bool, error) {
	var avg *float64
	err := r.db.Model(&model.Match{}).
		Where("finalized = ?", true).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

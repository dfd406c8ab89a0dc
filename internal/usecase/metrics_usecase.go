package usecase

import (
	"context"

	"github.com/fadilmartias/career-platform/internal/dto"
)

const secondsPerDay = 86400.0

type MetricsUsecase struct {
	studentRepo StudentRepo
	jobRepo     JobRepo
	matchRepo   MatchRepo
}

func NewMetricsUsecase(studentRepo StudentRepo, jobRepo JobRepo, matchRepo MatchRepo) *MetricsUsecase {
	return &MetricsUsecase{
		studentRepo: studentRepo,
		jobRepo:     jobRepo,
		matchRepo:   matchRepo,
	}
}

// SchoolMetrics computes placement metrics for one school. Rates that would
// divide by zero come back nil ("not applicable"). The finalized-score
// average runs across all schools; every other figure is school-scoped.
func (uc *MetricsUsecase) SchoolMetrics(ctx context.Context, school string) (*dto.SchoolMetricsDTO, error) {
	out := &dto.SchoolMetricsDTO{School: school}

	studentCount, err := uc.studentRepo.CountStudentsBySchool(school)
	if err != nil {
		return nil, err
	}
	out.StudentCount = studentCount

	if studentCount > 0 {
		placedCount, err := uc.studentRepo.CountPlacedStudentsBySchool(school)
		if err != nil {
			return nil, err
		}
		rate := float64(placedCount) / float64(studentCount)
		out.PlacementRate = &rate
	}

	students, err := uc.studentRepo.GetStudentsBySchool(school)
	if err != nil {
		return nil, err
	}
	var totalDays float64
	var matched int
	for _, s := range students {
		first, err := uc.matchRepo.FirstMatchForStudent(s.ID.String())
		if err != nil {
			return nil, err
		}
		if first == nil {
			continue
		}
		totalDays += first.CreatedAt.Sub(s.CreatedAt).Seconds() / secondsPerDay
		matched++
	}
	if matched > 0 {
		avg := totalDays / float64(matched)
		out.AvgDaysToPlacement = &avg
	}

	if avgScore, ok, err := uc.matchRepo.AvgFinalizedScore(); err != nil {
		return nil, err
	} else if ok {
		out.AvgFinalizedScore = &avgScore
	}

	jobs, err := uc.jobRepo.GetAllJobs()
	if err != nil {
		return nil, err
	}
	out.Jobs = make([]dto.JobBreakdownDTO, 0, len(jobs))
	for _, job := range jobs {
		matches, err := uc.matchRepo.GetMatchesByJob(job.ID.String())
		if err != nil {
			return nil, err
		}
		breakdown := dto.JobBreakdownDTO{JobID: job.ID, Title: job.Title}
		for _, m := range matches {
			if !m.Finalized && !m.Archived {
				breakdown.Queued++
			}
			if m.Finalized {
				breakdown.Finalized++
			}
			if m.Archived {
				breakdown.Archived++
			}
		}
		out.Jobs = append(out.Jobs, breakdown)
	}

	return out, nil
}

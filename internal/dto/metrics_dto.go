package dto

import "github.com/google/uuid"

// SchoolMetricsDTO reports placement metrics for one school. Nil pointer
// fields mean "not applicable" (no students, no matched students, or no
// finalized matches) and render as null rather than NaN.
type SchoolMetricsDTO struct {
	School             string            `json:"school"`
	StudentCount       int64             `json:"student_count"`
	PlacementRate      *float64          `json:"placement_rate"`
	AvgDaysToPlacement *float64          `json:"avg_days_to_placement"`
	AvgFinalizedScore  *float64          `json:"avg_finalized_score"`
	Jobs               []JobBreakdownDTO `json:"jobs"`
}

// JobBreakdownDTO counts a job's matches by lifecycle state. Queued means
// both flags false; a finalize-then-archive match counts under both finalized
// and archived.
type JobBreakdownDTO struct {
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Queued    int       `json:"queued"`
	Finalized int       `json:"finalized"`
	Archived  int       `json:"archived"`
}

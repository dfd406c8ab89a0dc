package model

import (
	"time"

	"github.com/google/uuid"
)

// Match references a Student and a Job without owning either. There is no
// FK cascade: deleting a student or job leaves its matches dangling, and
// duplicate (student, job) rows are allowed.
//
// Finalized and Archived are independent one-way flags. A match with both
// flags false is "queued"; finalize-then-archive leaves both true and readers
// must tolerate that.
type Match struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;index" json:"student_id"`
	JobID     uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	Score     float64   `gorm:"type:float;default:0" json:"score"`
	Finalized bool      `gorm:"default:false" json:"finalized"`
	Archived  bool      `gorm:"default:false" json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Match) TableName() string {
	return "matches"
}

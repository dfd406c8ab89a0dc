package model

import (
	"time"

	"github.com/google/uuid"
)

// Student's embedding vector lives in Redis under embedding:<id>, not here.
// The row is the source of truth for existence; the cached vector is derived
// and may legitimately be absent.
type Student struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(120)" json:"name"`
	Location   string    `gorm:"type:varchar(120)" json:"location"`
	Experience string    `gorm:"type:text" json:"experience"`
	ResumePath string    `gorm:"type:varchar(255)" json:"resume_path"`
	Summary    string    `gorm:"type:text" json:"summary"`
	School     string    `gorm:"type:varchar(120)" json:"school"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Student) TableName() string {
	return "students"
}

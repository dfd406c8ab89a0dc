package model

import (
	"time"

	"github.com/google/uuid"
)

// Job vectors are not cached; they are recomputed from the description at
// match time.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(120)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

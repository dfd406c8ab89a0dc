package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Staff struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex" json:"username"`
	FirstName    string    `gorm:"type:varchar(120)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(120)" json:"last_name"`
	Email        string    `gorm:"type:varchar(120)" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128)" json:"-"`
	Name         string    `gorm:"type:varchar(120)" json:"name"`
	School       string    `gorm:"type:varchar(120)" json:"school"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Staff) TableName() string {
	return "staff"
}

func (s *Staff) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.PasswordHash = string(hash)
	return nil
}

func (s *Staff) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
}

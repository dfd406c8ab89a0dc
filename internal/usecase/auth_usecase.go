package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	staffRepo StaffRepo
	vectors   VectorStore
	authCfg   *config.AuthConfig
}

func NewAuthUsecase(staffRepo StaffRepo, vectors VectorStore, authCfg *config.AuthConfig) *AuthUsecase {
	return &AuthUsecase{
		staffRepo: staffRepo,
		vectors:   vectors,
		authCfg:   authCfg,
	}
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Name      string
	School    string
	IsAdmin   bool
}

func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.Staff, error) {
	if _, err := uc.staffRepo.FindStaffByUsername(in.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	staff := &model.Staff{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Name:      in.Name,
		School:    in.School,
		IsAdmin:   in.IsAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := staff.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := uc.staffRepo.CreateStaff(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Login checks credentials and issues a signed JWT carrying the staff id.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (string, *model.Staff, error) {
	staff, err := uc.staffRepo.FindStaffByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !staff.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   staff.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(uc.authCfg.TokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.authCfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, staff, nil
}

// ForgotPassword issues a one-hour reset token stored in Redis. An unknown
// username returns ErrNotFound; nothing is stored in that case.
func (uc *AuthUsecase) ForgotPassword(ctx context.Context, username string) (string, error) {
	staff, err := uc.staffRepo.FindStaffByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	token := uuid.NewString()
	if err := uc.vectors.StoreResetToken(ctx, token, staff.ID); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token and sets the new password. Tokens are
// single use; a second attempt with the same token fails.
func (uc *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	staffID, err := uc.vectors.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}
	if staffID == uuid.Nil {
		return ErrInvalidToken
	}
	staff, err := uc.staffRepo.FindStaffByID(staffID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if err := staff.SetPassword(newPassword); err != nil {
		return err
	}
	return uc.staffRepo.UpdateStaff(staff)
}

// UpdatePassword changes the password of an authenticated staff member.
func (uc *AuthUsecase) UpdatePassword(ctx context.Context, staffID, newPassword string) error {
	staff, err := uc.staffRepo.FindStaffByID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := staff.SetPassword(newPassword); err != nil {
		return err
	}
	return uc.staffRepo.UpdateStaff(staff)
}

func (uc *AuthUsecase) GetStaff(ctx context.Context, id string) (*model.Staff, error) {
	staff, err := uc.staffRepo.FindStaffByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return staff, nil
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubStaffRepo struct {
	staff *model.Staff
}

func (r *stubStaffRepo) CreateStaff(s *model.Staff) error { return nil }

func (r *stubStaffRepo) UpdateStaff(s *model.Staff) error { return nil }

func (r *stubStaffRepo) FindStaffByID(id string) (*model.Staff, error) {
	if r.staff != nil && r.staff.ID.String() == id {
		cp := *r.staff
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStaffRepo) FindStaffByUsername(username string) (*model.Staff, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubVectorStore struct{}

func (s *stubVectorStore) StoreEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return nil
}

func (s *stubVectorStore) GetEmbedding(ctx context.Context, id uuid.UUID) ([]float32, error) {
	return nil, nil
}

func (s *stubVectorStore) DeleteEmbedding(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubVectorStore) StoreResetToken(ctx context.Context, token string, staffID uuid.UUID) error {
	return nil
}

func (s *stubVectorStore) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthTestApp(staff *model.Staff, cfg *config.AuthConfig) *fiber.App {
	authUc := usecase.NewAuthUsecase(&stubStaffRepo{staff: staff}, &stubVectorStore{}, cfg)

	app := fiber.New()
	app.Get("/protected", RequireAuth(authUc, cfg), func(c *fiber.Ctx) error {
		return c.SendString(CurrentStaff(c).Username)
	})
	app.Get("/admin-only", RequireAuth(authUc, cfg), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireAuthUsesInjectedSecret(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "route-secret", TokenLifetime: time.Hour}
	staff := &model.Staff{ID: uuid.New(), Username: "jdoe", School: "SchoolX"}
	app := newAuthTestApp(staff, cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "route-secret", staff.ID.String()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "other-secret", staff.ID.String()))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "route-secret", TokenLifetime: time.Hour}
	app := newAuthTestApp(&model.Staff{ID: uuid.New()}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthUnknownStaff(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "route-secret", TokenLifetime: time.Hour}
	app := newAuthTestApp(&model.Staff{ID: uuid.New()}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "route-secret", uuid.NewString()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "route-secret", TokenLifetime: time.Hour}
	staff := &model.Staff{ID: uuid.New(), Username: "jdoe"}
	app := newAuthTestApp(staff, cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "route-secret", staff.ID.String()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	staff.IsAdmin = true
	app = newAuthTestApp(staff, cfg)
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "route-secret", staff.ID.String()))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

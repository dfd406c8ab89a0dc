package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/career-platform/internal/middleware"
	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/service"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubStudentRepo struct {
	students []*model.Student
}

func (r *stubStudentRepo) CreateStudent(s *model.Student) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.students = append(r.students, &cp)
	return nil
}

func (r *stubStudentRepo) UpdateStudent(s *model.Student) error { return nil }

func (r *stubStudentRepo) FindStudentByID(id string) (*model.Student, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStudentRepo) GetStudents(page, limit int) ([]model.Student, int64, error) {
	return nil, 0, nil
}

func (r *stubStudentRepo) GetStudentsBySchool(school string) ([]model.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) CountStudentsBySchool(school string) (int64, error) { return 0, nil }

func (r *stubStudentRepo) CountPlacedStudentsBySchool(school string) (int64, error) { return 0, nil }

func (r *stubStudentRepo) DeleteStudent(id string) error { return nil }

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

func stubAuth(c *fiber.Ctx) error {
	c.Locals(middleware.StaffLocalKey, &model.Staff{ID: uuid.New(), School: "SchoolX"})
	return c.Next()
}

func newStudentTestApp(repo *stubStudentRepo) *fiber.App {
	app := fiber.New()
	uc := usecase.NewStudentUsecase(repo, &stubVectorStore{}, service.NewDisabledProvider())
	NewStudentHandler(uc).RegisterRoutes(app, stubAuth)
	return app
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestCreateStudentMissingResume(t *testing.T) {
	repo := &stubStudentRepo{}
	app := newStudentTestApp(repo)

	body, contentType := multipartForm(t, map[string]string{
		"name":       "Alice",
		"location":   "NY",
		"experience": "Go and Postgres",
	})
	req := httptest.NewRequest(http.MethodPost, "/students", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.students, "no student row may be written without a resume")
}

func TestCreateStudentMissingFields(t *testing.T) {
	repo := &stubStudentRepo{}
	app := newStudentTestApp(repo)

	body, contentType := multipartForm(t, map[string]string{
		"name": "Alice",
	})
	req := httptest.NewRequest(http.MethodPost, "/students", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.students)
}

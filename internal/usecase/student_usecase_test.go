package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/fadilmartias/career-platform/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStudentWithoutProvider(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	uc := NewStudentUsecase(studentRepo, vectors, service.NewDisabledProvider())

	experience := strings.Repeat("A", 100)
	student, err := uc.CreateStudent(context.Background(), StudentInput{
		Name:       "Alice",
		Location:   "NY",
		Experience: experience,
	}, "SchoolX")
	require.NoError(t, err)

	assert.Equal(t, "Alice, NY: "+experience[:50]+"...", student.Summary)
	assert.Equal(t, "SchoolX", student.School)

	// No credential means no cached vector.
	vec, err := vectors.GetEmbedding(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, vec)
}

func TestCreateStudentCachesEmbedding(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	provider := &fakeProvider{
		summary: "go developer in berlin",
		byText:  map[string][]float32{"go developer in berlin": {0.1, 0.2}},
	}
	uc := NewStudentUsecase(studentRepo, vectors, provider)

	student, err := uc.CreateStudent(context.Background(), StudentInput{
		Name:       "Ben",
		Location:   "Berlin",
		Experience: "Go",
	}, "SchoolX")
	require.NoError(t, err)

	vec, err := vectors.GetEmbedding(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vec)
}

func TestUpdateStudentRecomputesEmbeddingOnChange(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	provider := &fakeProvider{
		summary: "v1",
		byText:  map[string][]float32{"v1": {1}, "v2": {2}},
	}
	uc := NewStudentUsecase(studentRepo, vectors, provider)

	student, err := uc.CreateStudent(context.Background(), StudentInput{
		Name: "Cara", Location: "Oslo", Experience: "Go",
	}, "SchoolX")
	require.NoError(t, err)

	provider.summary = "v2"
	updated, err := uc.UpdateStudent(context.Background(), student.ID.String(), StudentInput{
		Name: "Cara", Location: "Oslo", Experience: "Go and Rust",
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Summary)

	vec, err := vectors.GetEmbedding(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, []float32{2}, vec)
}

func TestUpdateStudentNoChangeKeepsSummary(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	provider := &fakeProvider{summary: "v1"}
	uc := NewStudentUsecase(studentRepo, vectors, provider)

	student, err := uc.CreateStudent(context.Background(), StudentInput{
		Name: "Dan", Location: "Rome", Experience: "Go",
	}, "SchoolX")
	require.NoError(t, err)

	provider.summary = "v2"
	updated, err := uc.UpdateStudent(context.Background(), student.ID.String(), StudentInput{
		Name: "Dan", Location: "Rome", Experience: "Go",
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", updated.Summary)
}

func TestDeleteStudentRemovesCachedVector(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	provider := &fakeProvider{
		summary: "s",
		byText:  map[string][]float32{"s": {1, 2, 3}},
	}
	uc := NewStudentUsecase(studentRepo, vectors, provider)

	student, err := uc.CreateStudent(context.Background(), StudentInput{
		Name: "Eve", Location: "Paris", Experience: "Go",
	}, "SchoolX")
	require.NoError(t, err)
	require.NotEmpty(t, vectors.vectors)

	require.NoError(t, uc.DeleteStudent(context.Background(), student.ID.String()))

	// Row and vector go together; an orphaned vector is a defect.
	_, err = uc.GetStudent(context.Background(), student.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, vectors.vectors)
}

func TestDeleteStudentUnknown(t *testing.T) {
	uc := NewStudentUsecase(&fakeStudentRepo{}, newFakeVectorStore(), service.NewDisabledProvider())
	err := uc.DeleteStudent(context.Background(), "3b9a7f6e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportStudents(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	vectors := newFakeVectorStore()
	uc := NewStudentUsecase(studentRepo, vectors, service.NewDisabledProvider())

	csvData := "name,location,experience\n" +
		"Ana,NY,Python and SQL\n" +
		"Ben,LA,Go\n" +
		",skipped,row\n"

	created, err := uc.ImportStudents(context.Background(), strings.NewReader(csvData), "SchoolX")
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	require.Len(t, studentRepo.students, 2)
	assert.Equal(t, "Ana", studentRepo.students[0].Name)
	assert.Equal(t, "SchoolX", studentRepo.students[0].School)
}

func TestImportStudentsWithoutHeader(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	uc := NewStudentUsecase(studentRepo, newFakeVectorStore(), service.NewDisabledProvider())

	created, err := uc.ImportStudents(context.Background(), strings.NewReader("Ana,NY,Python\n"), "SchoolX")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

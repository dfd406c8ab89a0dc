package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/service"
	"gorm.io/gorm"
)

type StudentUsecase struct {
	studentRepo StudentRepo
	vectors     VectorStore
	provider    service.EmbeddingProvider
}

func NewStudentUsecase(studentRepo StudentRepo, vectors VectorStore, provider service.EmbeddingProvider) *StudentUsecase {
	return &StudentUsecase{
		studentRepo: studentRepo,
		vectors:     vectors,
		provider:    provider,
	}
}

type StudentInput struct {
	Name       string
	Location   string
	Experience string
	ResumePath string
}

// CreateStudent persists a student and best-effort caches an embedding of the
// generated summary. Provider failures never fail the intake; they just leave
// the vector absent.
func (uc *StudentUsecase) CreateStudent(ctx context.Context, in StudentInput, school string) (*model.Student, error) {
	summary := uc.provider.Summarize(ctx, in.Name, in.Location, in.Experience)
	student := &model.Student{
		Name:       in.Name,
		Location:   in.Location,
		Experience: in.Experience,
		ResumePath: in.ResumePath,
		Summary:    summary,
		School:     school,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uc.studentRepo.CreateStudent(student); err != nil {
		return nil, err
	}

	uc.refreshEmbedding(ctx, student)
	return student, nil
}

// UpdateStudent applies edits, and when the inputs that feed the summary
// changed it regenerates the summary and recomputes the cached vector.
func (uc *StudentUsecase) UpdateStudent(ctx context.Context, id string, in StudentInput) (*model.Student, error) {
	student, err := uc.studentRepo.FindStudentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	changed := student.Name != in.Name || student.Location != in.Location || student.Experience != in.Experience
	student.Name = in.Name
	student.Location = in.Location
	student.Experience = in.Experience
	if in.ResumePath != "" {
		student.ResumePath = in.ResumePath
	}
	if changed {
		student.Summary = uc.provider.Summarize(ctx, in.Name, in.Location, in.Experience)
	}
	student.UpdatedAt = time.Now()
	if err := uc.studentRepo.UpdateStudent(student); err != nil {
		return nil, err
	}

	if changed {
		uc.refreshEmbedding(ctx, student)
	}
	return student, nil
}

// DeleteStudent removes the row and its cached vector together. Leaving an
// orphaned vector behind is a defect, so the cache delete happens even though
// a miss there would be harmless.
func (uc *StudentUsecase) DeleteStudent(ctx context.Context, id string) error {
	student, err := uc.studentRepo.FindStudentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := uc.studentRepo.DeleteStudent(id); err != nil {
		return err
	}
	if err := uc.vectors.DeleteEmbedding(ctx, student.ID); err != nil {
		log.Printf("failed to delete cached embedding for student %s: %v", student.ID, err)
	}
	return nil
}

func (uc *StudentUsecase) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	student, err := uc.studentRepo.FindStudentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (uc *StudentUsecase) GetStudents(ctx context.Context, page, limit int) ([]model.Student, int64, error) {
	return uc.studentRepo.GetStudents(page, limit)
}

// ImportStudents reads a CSV of name,location,experience rows and runs each
// through the normal intake pipeline. A header row is skipped when detected.
// Returns the number of students created.
func (uc *StudentUsecase) ImportStudents(ctx context.Context, r io.Reader, school string) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	created := 0
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, err
		}
		if len(record) < 3 {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "name") {
				continue
			}
		}
		in := StudentInput{
			Name:       strings.TrimSpace(record[0]),
			Location:   strings.TrimSpace(record[1]),
			Experience: strings.TrimSpace(record[2]),
		}
		if in.Name == "" {
			continue
		}
		if _, err := uc.CreateStudent(ctx, in, school); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// refreshEmbedding computes and caches the summary vector. The cache ignores
// empty vectors, so a failed compute never clobbers a previously valid one.
func (uc *StudentUsecase) refreshEmbedding(ctx context.Context, student *model.Student) {
	embedding, err := uc.provider.Embed(ctx, student.Summary)
	if err != nil {
		if !errors.Is(err, service.ErrProviderDisabled) {
			log.Printf("embedding failed for student %s: %v", student.ID, err)
		}
		return
	}
	if err := uc.vectors.StoreEmbedding(ctx, student.ID, embedding); err != nil {
		log.Printf("failed to cache embedding for student %s: %v", student.ID, err)
	}
}

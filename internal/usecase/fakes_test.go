package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes for the store interfaces. They return gorm.ErrRecordNotFound
// like the real repositories so the usecases' error mapping is exercised.

type fakeStaffRepo struct {
	staff map[uuid.UUID]*model.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[uuid.UUID]*model.Staff)}
}

func (r *fakeStaffRepo) CreateStaff(s *model.Staff) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

func (r *fakeStaffRepo) UpdateStaff(s *model.Staff) error {
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

func (r *fakeStaffRepo) FindStaffByID(id string) (*model.Staff, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if s, ok := r.staff[uid]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStaffRepo) FindStaffByUsername(username string) (*model.Staff, error) {
	for _, s := range r.staff {
		if s.Username == username {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStudentRepo struct {
	students []*model.Student
}

func (r *fakeStudentRepo) CreateStudent(s *model.Student) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.students = append(r.students, &cp)
	return nil
}

func (r *fakeStudentRepo) UpdateStudent(s *model.Student) error {
	for i, existing := range r.students {
		if existing.ID == s.ID {
			cp := *s
			r.students[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindStudentByID(id string) (*model.Student, error) {
	for _, s := range r.students {
		if s.ID.String() == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) GetStudents(page, limit int) ([]model.Student, int64, error) {
	out := make([]model.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStudentRepo) GetStudentsBySchool(school string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range r.students {
		if s.School == school {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) CountStudentsBySchool(school string) (int64, error) {
	var n int64
	for _, s := range r.students {
		if s.School == school {
			n++
		}
	}
	return n, nil
}

func (r *fakeStudentRepo) DeleteStudent(id string) error {
	for i, s := range r.students {
		if s.ID.String() == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeJobRepo struct {
	jobs []*model.Job
}

func (r *fakeJobRepo) CreateJob(j *model.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	cp := *j
	r.jobs = append(r.jobs, &cp)
	return nil
}

func (r *fakeJobRepo) UpdateJob(j *model.Job) error {
	for i, existing := range r.jobs {
		if existing.ID == j.ID {
			cp := *j
			r.jobs[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) FindJobByID(id string) (*model.Job, error) {
	for _, j := range r.jobs {
		if j.ID.String() == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) GetJobs(page, limit int) ([]model.Job, int64, error) {
	out := make([]model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) GetAllJobs() ([]model.Job, error) {
	out := make([]model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) DeleteJob(id string) error {
	for i, j := range r.jobs {
		if j.ID.String() == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMatchRepo struct {
	matches []*model.Match
}

func (r *fakeMatchRepo) CreateMatch(m *model.Match) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.matches = append(r.matches, &cp)
	return nil
}

func (r *fakeMatchRepo) UpdateMatch(m *model.Match) error {
	for i, existing := range r.matches {
		if existing.ID == m.ID {
			cp := *m
			r.matches[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeMatchRepo) FindMatchByID(id string) (*model.Match, error) {
	for _, m := range r.matches {
		if m.ID.String() == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMatchRepo) GetMatches() ([]model.Match, error) {
	out := make([]model.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMatchRepo) GetQueuedMatches(jobID string) ([]model.Match, error) {
	var out []model.Match
	for _, m := range r.matches {
		if m.JobID.String() == jobID && !m.Finalized && !m.Archived {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMatchRepo) GetMatchesByJob(jobID string) ([]model.Match, error) {
	var out []model.Match
	for _, m := range r.matches {
		if m.JobID.String() == jobID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) FirstMatchForStudent(studentID string) (*model.Match, error) {
	var first *model.Match
	for _, m := range r.matches {
		if m.StudentID.String() != studentID {
			continue
		}
		if first == nil || m.CreatedAt.Before(first.CreatedAt) {
			first = m
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

func (r *fakeMatchRepo) AvgFinalizedScore() (float64, bool, error) {
	var sum float64
	var n int
	for _, m := range r.matches {
		if m.Finalized {
			sum += m.Score
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

// CountPlacedStudentsBySchool needs the match rows, so the fakes are linked.
type linkedStudentRepo struct {
	*fakeStudentRepo
	matchRepo *fakeMatchRepo
}

func (r *linkedStudentRepo) CountPlacedStudentsBySchool(school string) (int64, error) {
	placed := make(map[uuid.UUID]bool)
	for _, s := range r.students {
		if s.School != school {
			continue
		}
		for _, m := range r.matchRepo.matches {
			if m.StudentID == s.ID {
				placed[s.ID] = true
			}
		}
	}
	return int64(len(placed)), nil
}

// fakeStudentRepo alone never reports placements.
func (r *fakeStudentRepo) CountPlacedStudentsBySchool(school string) (int64, error) {
	return 0, nil
}

type fakeVectorStore struct {
	vectors map[uuid.UUID][]float32
	tokens  map[string]uuid.UUID
}

func newFakeVectorStore() *fakeVectorStore {
	return &fakeVectorStore{
		vectors: make(map[uuid.UUID][]float32),
		tokens:  make(map[string]uuid.UUID),
	}
}

func (s *fakeVectorStore) StoreEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	if len(embedding) == 0 {
		return nil
	}
	s.vectors[id] = embedding
	return nil
}

func (s *fakeVectorStore) GetEmbedding(ctx context.Context, id uuid.UUID) ([]float32, error) {
	return s.vectors[id], nil
}

func (s *fakeVectorStore) DeleteEmbedding(ctx context.Context, id uuid.UUID) error {
	delete(s.vectors, id)
	return nil
}

func (s *fakeVectorStore) StoreResetToken(ctx context.Context, token string, staffID uuid.UUID) error {
	s.tokens[token] = staffID
	return nil
}

func (s *fakeVectorStore) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, nil
	}
	delete(s.tokens, token)
	return id, nil
}

// fakeProvider hands out canned vectors keyed by input text.
type fakeProvider struct {
	byText  map[string][]float32
	err     error
	summary string
}

func (p *fakeProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.err != nil {
		return nil, p.err
	}
	if v, ok := p.byText[text]; ok {
		return v, nil
	}
	return nil, nil
}

func (p *fakeProvider) Summarize(ctx context.Context, name, location, experience string) string {
	if p.summary != "" {
		return p.summary
	}
	return "summary of " + name
}

func (p *fakeProvider) Enabled() bool {
	return true
}

func daysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}

package services

import (
	"context"

	"go.uber.org/zap"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeStudentRepo struct {
	students map[string]*domain.Student
	graphRow *graphdata.StudentGraphRow
	upserted []*domain.Student
	err      error
}

func (f *fakeStudentRepo) Upsert(_ context.Context, s *domain.Student) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, s)
	return nil
}

func (f *fakeStudentRepo) Get(_ context.Context, id string) (*domain.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.students[id], nil
}

func (f *fakeStudentRepo) GraphRow(_ context.Context, _ string) (*graphdata.StudentGraphRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.graphRow, nil
}

type fakePersonalityRepo struct {
	types  []domain.PersonalityType
	byCode map[string]*domain.PersonalityType
	suited map[string][]domain.CareerWithSkills
	err    error
}

func (f *fakePersonalityRepo) List(_ context.Context) ([]domain.PersonalityType, error) {
	return f.types, f.err
}

func (f *fakePersonalityRepo) Get(_ context.Context, code string) (*domain.PersonalityType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCode[code], nil
}

func (f *fakePersonalityRepo) SuitedCareers(_ context.Context, code string) ([]domain.CareerWithSkills, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suited[code], nil
}

type fakeCareerRepo struct {
	graphRow *graphdata.CareerGraphRow
	top      []domain.Career
	names    map[string]string
	topCalls int
	err      error
}

func (f *fakeCareerRepo) List(_ context.Context) ([]domain.CareerListItem, error) {
	return nil, f.err
}

func (f *fakeCareerRepo) Detail(_ context.Context, _ string) (*domain.CareerDetail, error) {
	return nil, f.err
}

func (f *fakeCareerRepo) GraphRow(_ context.Context, _ string) (*graphdata.CareerGraphRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.graphRow, nil
}

func (f *fakeCareerRepo) Top(_ context.Context, limit int) ([]domain.Career, error) {
	f.topCalls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeCareerRepo) NamesByIDs(_ context.Context, ids []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

type fakePathRepo struct {
	candidates     []graphdata.PathCandidate
	candidateCalls int
	err            error
}

func (f *fakePathRepo) ForCareer(_ context.Context, _ string) ([]domain.PathWithCourses, error) {
	return nil, f.err
}

func (f *fakePathRepo) Detail(_ context.Context, _ string) (*domain.PathDetail, error) {
	return nil, f.err
}

func (f *fakePathRepo) CandidatesForPersonality(_ context.Context, _ string) ([]graphdata.PathCandidate, error) {
	f.candidateCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type fakeCourseRepo struct {
	top      []domain.Course
	names    map[string]string
	topCalls int
	err      error
}

func (f *fakeCourseRepo) TopByRating(_ context.Context, limit int) ([]domain.Course, error) {
	f.topCalls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeCourseRepo) NamesByIDs(_ context.Context, ids []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

type fakeSkillRepo struct {
	top      []domain.Skill
	topCalls int
	err      error
}

func (f *fakeSkillRepo) Top(_ context.Context, limit int) ([]domain.Skill, error) {
	f.topCalls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

type fakeSnapshotRepo struct {
	rows      *graphdata.FullGraphRows
	lastLimit int
	err       error
}

func (f *fakeSnapshotRepo) FullRows(_ context.Context, limit int) (*graphdata.FullGraphRows, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeChatEngine struct {
	reply        string
	err          error
	lastMessages []openai.Message
	lastContext  string
}

func (f *fakeChatEngine) Complete(_ context.Context, messages []openai.Message, contextBlock string) (string, error) {
	f.lastMessages = messages
	f.lastContext = contextBlock
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

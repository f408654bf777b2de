package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

// SubmitResultInput carries one personality test submission. StudentID is
// optional; a new student is created when it is absent.
type SubmitResultInput struct {
	StudentID        string             `json:"studentId"`
	Code             string             `json:"code"`
	Scores           map[string]float64 `json:"scores"`
	CompletedCourses []string           `json:"completedCourses"`
	TargetCareers    []string           `json:"targetCareers"`
}

type PersonalityService interface {
	SubmitResult(ctx context.Context, input SubmitResultInput) (*domain.Student, error)
	ListTypes(ctx context.Context) ([]domain.PersonalityType, error)
	GetType(ctx context.Context, code string) (*domain.PersonalityDetail, error)
}

type personalityService struct {
	log           *logger.Logger
	personalities graphdata.PersonalityRepo
	students      graphdata.StudentRepo
}

func NewPersonalityService(
	log *logger.Logger,
	personalityRepo graphdata.PersonalityRepo,
	studentRepo graphdata.StudentRepo,
) PersonalityService {
	return &personalityService{
		log:           log.With("service", "PersonalityService"),
		personalities: personalityRepo,
		students:      studentRepo,
	}
}

func (s *personalityService) SubmitResult(ctx context.Context, input SubmitResultInput) (*domain.Student, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apierr.Invalid("missing_code", fmt.Errorf("personality code is required"))
	}
	if !domain.ValidPersonalityCode(code) {
		return nil, apierr.Invalid("unknown_code", fmt.Errorf("unknown personality code %q", code))
	}
	if len(input.Scores) == 0 {
		return nil, apierr.Invalid("missing_scores", fmt.Errorf("personality scores are required"))
	}

	studentID := strings.TrimSpace(input.StudentID)
	var student *domain.Student
	if studentID != "" {
		existing, err := s.students.Get(ctx, studentID)
		if err != nil {
			return nil, apierr.Upstream("graph_query_failed", err)
		}
		student = existing
	} else {
		studentID = uuid.NewString()
	}

	now := time.Now().UTC()
	if student == nil {
		student = &domain.Student{ID: studentID, CreatedAt: now}
	}
	student.PersonalityCode = code
	student.PersonalityScores = input.Scores
	if input.CompletedCourses != nil {
		student.CompletedCourses = dedupeStrings(input.CompletedCourses)
	}
	if input.TargetCareers != nil {
		student.TargetCareers = dedupeStrings(input.TargetCareers)
	}
	student.UpdatedAt = now

	if err := s.students.Upsert(ctx, student); err != nil {
		return nil, apierr.Upstream("graph_write_failed", err)
	}
	s.log.Info("personality result stored", "student_id", student.ID, "code", code)
	return student, nil
}

func (s *personalityService) ListTypes(ctx context.Context) ([]domain.PersonalityType, error) {
	types, err := s.personalities.List(ctx)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	return types, nil
}

func (s *personalityService) GetType(ctx context.Context, code string) (*domain.PersonalityDetail, error) {
	t, err := s.personalities.Get(ctx, code)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if t == nil {
		return nil, apierr.NotFound("personality_not_found", fmt.Errorf("personality type %q not found", code))
	}
	careers, err := s.personalities.SuitedCareers(ctx, code)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	detail := &domain.PersonalityDetail{PersonalityType: *t, SuitedCareers: []domain.Career{}}
	for _, c := range careers {
		detail.SuitedCareers = append(detail.SuitedCareers, c.Career)
	}
	return detail, nil
}

// dedupeStrings keeps first occurrences; the stored value is a set even
// though it is persisted as a sequence.
func dedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

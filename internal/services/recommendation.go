package services

import (
	"context"
	"sort"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

// maxPathRecommendations caps the ranked learning-path list.
const maxPathRecommendations = 3

type RecommendationService interface {
	// PathsForStudent traverses Personality → Career → LearningPath → Course
	// and filters each path's courses against the student's completed set.
	// A student without a classification yields an empty list.
	PathsForStudent(ctx context.Context, studentID string) ([]domain.PathRecommendation, error)

	// CareersForPersonality lists careers suited to the code, growth
	// potential descending. An unknown code yields an empty list.
	CareersForPersonality(ctx context.Context, code string) ([]domain.CareerWithSkills, error)
}

type recommendationService struct {
	log           *logger.Logger
	students      graphdata.StudentRepo
	paths         graphdata.PathRepo
	personalities graphdata.PersonalityRepo
}

func NewRecommendationService(
	log *logger.Logger,
	studentRepo graphdata.StudentRepo,
	pathRepo graphdata.PathRepo,
	personalityRepo graphdata.PersonalityRepo,
) RecommendationService {
	return &recommendationService{
		log:           log.With("service", "RecommendationService"),
		students:      studentRepo,
		paths:         pathRepo,
		personalities: personalityRepo,
	}
}

func (s *recommendationService) PathsForStudent(ctx context.Context, studentID string) ([]domain.PathRecommendation, error) {
	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if student == nil || student.PersonalityCode == "" {
		return []domain.PathRecommendation{}, nil
	}

	candidates, err := s.paths.CandidatesForPersonality(ctx, student.PersonalityCode)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}

	completed := student.CompletedSet()
	recs := make([]domain.PathRecommendation, 0, len(candidates))
	for _, cand := range candidates {
		remaining := make([]domain.Course, 0, len(cand.Courses))
		for _, course := range cand.Courses {
			if completed[course.ID] {
				continue
			}
			remaining = append(remaining, course)
		}
		// A fully completed path stays in with an empty remaining list;
		// only individual courses are filtered.
		recs = append(recs, domain.PathRecommendation{
			Path:             cand.Path,
			TargetCareer:     cand.Career,
			RemainingCourses: remaining,
		})
	}

	// Stable: ties keep the upstream result order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].TargetCareer.GrowthPotential > recs[j].TargetCareer.GrowthPotential
	})
	if len(recs) > maxPathRecommendations {
		recs = recs[:maxPathRecommendations]
	}
	return recs, nil
}

func (s *recommendationService) CareersForPersonality(ctx context.Context, code string) ([]domain.CareerWithSkills, error) {
	careers, err := s.personalities.SuitedCareers(ctx, code)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if careers == nil {
		careers = []domain.CareerWithSkills{}
	}
	sort.SliceStable(careers, func(i, j int) bool {
		return careers[i].GrowthPotential > careers[j].GrowthPotential
	})
	return careers, nil
}

package services

import (
	"context"
	"fmt"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type PathService interface {
	ForCareer(ctx context.Context, careerID string) ([]domain.PathWithCourses, error)
	Detail(ctx context.Context, id string) (*domain.PathDetail, error)
}

type pathService struct {
	log   *logger.Logger
	paths graphdata.PathRepo
}

func NewPathService(log *logger.Logger, pathRepo graphdata.PathRepo) PathService {
	return &pathService{
		log:   log.With("service", "PathService"),
		paths: pathRepo,
	}
}

func (s *pathService) ForCareer(ctx context.Context, careerID string) ([]domain.PathWithCourses, error) {
	paths, err := s.paths.ForCareer(ctx, careerID)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	return paths, nil
}

func (s *pathService) Detail(ctx context.Context, id string) (*domain.PathDetail, error) {
	detail, err := s.paths.Detail(ctx, id)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if detail == nil {
		return nil, apierr.NotFound("path_not_found", fmt.Errorf("learning path %q not found", id))
	}
	return detail, nil
}

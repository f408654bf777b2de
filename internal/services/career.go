package services

import (
	"context"
	"fmt"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type CareerService interface {
	List(ctx context.Context) ([]domain.CareerListItem, error)
	Detail(ctx context.Context, id string) (*domain.CareerDetail, error)
}

type careerService struct {
	log     *logger.Logger
	careers graphdata.CareerRepo
}

func NewCareerService(log *logger.Logger, careerRepo graphdata.CareerRepo) CareerService {
	return &careerService{
		log:     log.With("service", "CareerService"),
		careers: careerRepo,
	}
}

func (s *careerService) List(ctx context.Context) ([]domain.CareerListItem, error) {
	items, err := s.careers.List(ctx)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	return items, nil
}

func (s *careerService) Detail(ctx context.Context, id string) (*domain.CareerDetail, error) {
	detail, err := s.careers.Detail(ctx, id)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if detail == nil {
		return nil, apierr.NotFound("career_not_found", fmt.Errorf("career %q not found", id))
	}
	return detail, nil
}

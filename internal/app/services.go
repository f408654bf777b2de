package app

import (
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type Services struct {
	Personality    services.PersonalityService
	Career         services.CareerService
	Path           services.PathService
	Graph          services.GraphService
	Recommendation services.RecommendationService
	Chat           services.ChatService
}

func wireServices(log *logger.Logger, clients Clients, repos Repos) Services {
	contextBuilder := services.NewContextBuilder(
		log,
		repos.Students,
		repos.Personalities,
		repos.Careers,
		repos.Courses,
		repos.Skills,
	)

	return Services{
		Personality:    services.NewPersonalityService(log, repos.Personalities, repos.Students),
		Career:         services.NewCareerService(log, repos.Careers),
		Path:           services.NewPathService(log, repos.Paths),
		Graph:          services.NewGraphService(log, repos.Students, repos.Careers, repos.Snapshots, clients.GraphCache),
		Recommendation: services.NewRecommendationService(log, repos.Students, repos.Paths, repos.Personalities),
		Chat:           services.NewChatService(log, clients.OpenAI, contextBuilder, repos.Students),
	}
}

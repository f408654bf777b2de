package app

import (
	"github.com/zhilu/aicareer-backend/internal/http/handlers"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type Handlers struct {
	Personality *handlers.PersonalityHandler
	Career      *handlers.CareerHandler
	Path        *handlers.PathHandler
	Graph       *handlers.GraphHandler
	Chat        *handlers.ChatHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	return Handlers{
		Personality: handlers.NewPersonalityHandler(log, svcs.Personality, svcs.Recommendation),
		Career:      handlers.NewCareerHandler(log, svcs.Career, svcs.Path),
		Path:        handlers.NewPathHandler(log, svcs.Path, svcs.Recommendation),
		Graph:       handlers.NewGraphHandler(log, svcs.Graph),
		Chat:        handlers.NewChatHandler(log, svcs.Chat),
	}
}

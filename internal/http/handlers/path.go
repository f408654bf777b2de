package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/response"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type PathHandler struct {
	log             *logger.Logger
	paths           services.PathService
	recommendations services.RecommendationService
}

func NewPathHandler(
	log *logger.Logger,
	pathService services.PathService,
	recommendationService services.RecommendationService,
) *PathHandler {
	return &PathHandler{
		log:             log.With("handler", "PathHandler"),
		paths:           pathService,
		recommendations: recommendationService,
	}
}

func (h *PathHandler) Detail(c *gin.Context) {
	detail, err := h.paths.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"path": detail})
}

func (h *PathHandler) RecommendForStudent(c *gin.Context) {
	recs, err := h.recommendations.PathsForStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"recommendations": recs})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/response"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type PersonalityHandler struct {
	log             *logger.Logger
	personalities   services.PersonalityService
	recommendations services.RecommendationService
}

func NewPersonalityHandler(
	log *logger.Logger,
	personalityService services.PersonalityService,
	recommendationService services.RecommendationService,
) *PersonalityHandler {
	return &PersonalityHandler{
		log:             log.With("handler", "PersonalityHandler"),
		personalities:   personalityService,
		recommendations: recommendationService,
	}
}

func (h *PersonalityHandler) SubmitResult(c *gin.Context) {
	var input services.SubmitResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	student, err := h.personalities.SubmitResult(c.Request.Context(), input)
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"student": student})
}

func (h *PersonalityHandler) ListTypes(c *gin.Context) {
	types, err := h.personalities.ListTypes(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"types": types})
}

func (h *PersonalityHandler) GetType(c *gin.Context) {
	detail, err := h.personalities.GetType(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"type": detail})
}

func (h *PersonalityHandler) RecommendCareers(c *gin.Context) {
	careers, err := h.recommendations.CareersForPersonality(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"careers": careers})
}

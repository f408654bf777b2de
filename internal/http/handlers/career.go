package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/response"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type CareerHandler struct {
	log     *logger.Logger
	careers services.CareerService
	paths   services.PathService
}

func NewCareerHandler(log *logger.Logger, careerService services.CareerService, pathService services.PathService) *CareerHandler {
	return &CareerHandler{
		log:     log.With("handler", "CareerHandler"),
		careers: careerService,
		paths:   pathService,
	}
}

func (h *CareerHandler) List(c *gin.Context) {
	careers, err := h.careers.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"careers": careers})
}

func (h *CareerHandler) Detail(c *gin.Context) {
	detail, err := h.careers.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"career": detail})
}

func (h *CareerHandler) Paths(c *gin.Context) {
	paths, err := h.paths.ForCareer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"paths": paths})
}

package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/response"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/services"
)

type GraphHandler struct {
	log    *logger.Logger
	graphs services.GraphService
}

func NewGraphHandler(log *logger.Logger, graphService services.GraphService) *GraphHandler {
	return &GraphHandler{
		log:    log.With("handler", "GraphHandler"),
		graphs: graphService,
	}
}

func (h *GraphHandler) StudentGraph(c *gin.Context) {
	g, err := h.graphs.StudentGraph(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"graph": g})
}

func (h *GraphHandler) FullGraph(c *gin.Context) {
	// Non-numeric and non-positive limits fall back to the default.
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	g, err := h.graphs.FullGraph(c.Request.Context(), limit)
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"graph": g})
}

func (h *GraphHandler) CareerGraph(c *gin.Context) {
	g, err := h.graphs.CareerGraph(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"graph": g})
}

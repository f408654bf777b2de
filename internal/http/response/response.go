package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps a service error onto the envelope. Client errors keep
// their message; upstream and unknown failures are logged and surfaced as a
// generic message so internal detail never leaks.
func RespondAPIError(c *gin.Context, log *logger.Logger, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		if ae.Status >= http.StatusInternalServerError {
			if log != nil {
				log.Error("request failed upstream", "code", ae.Code, "error", err)
			}
			RespondError(c, ae.Status, ae.Code, errors.New("internal error"))
			return
		}
		RespondError(c, ae.Status, ae.Code, ae)
		return
	}
	if log != nil {
		log.Error("request failed", "error", err)
	}
	RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal error"))
}

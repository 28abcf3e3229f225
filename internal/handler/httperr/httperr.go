package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"tour-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const maxStackLines = 12

type CodeDetail struct {
	Code string `json:"code"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps a categorized use case error to its status. The
// message of 4xx errors is shown to the caller; anything uncategorized is a 500
// with a fixed message.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if code := errs.CodeOf(err); code != "" && status < http.StatusInternalServerError {
		detail = CodeDetail{Code: code}
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, maxStackLines))
	}
	AbortWithError(c, status, err, msg, detail)
}

func StatusOf(err error) (int, string) {
	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest, err.Error()
	case errs.ErrConflict:
		return http.StatusConflict, err.Error()
	case errs.ErrAuthorization:
		return http.StatusForbidden, err.Error()
	case errs.ErrState:
		return http.StatusUnprocessableEntity, err.Error()
	case errs.ErrNotFound:
		return http.StatusNotFound, err.Error()
	case errs.ErrExternalService:
		return http.StatusBadGateway, "Payment provider unavailable"
	case errs.ErrSignature:
		return http.StatusBadRequest, "invalid webhook"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

// ErrorResponse keeps the historical body shape: message is a plain
// string except for validation failures, which send one message per
// violated rule. errors carries the same violations as structured
// field/message pairs so clients do not have to parse message text.
type ErrorResponse struct {
	Message any                 `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), newErrorResponse(svcErr))
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}

func newErrorResponse(svcErr *serviceerrors.ServiceError) ErrorResponse {
	resp := ErrorResponse{
		Message: svcErr.Message,
		Errors:  svcErr.Fields,
	}
	if svcErr.Kind == serviceerrors.KindInvalidRequest && len(svcErr.Fields) > 0 {
		messages := make([]string, len(svcErr.Fields))
		for i, fe := range svcErr.Fields {
			messages[i] = fe.Message
		}
		resp.Message = messages
	}
	return resp
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/types"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

type ListBody struct {
	List       interface{}       `json:"list"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

func ListResponse(ctx echo.Context, list interface{}, message string, total uint64, filter types.Filter) error {
	body := ListBody{List: list}
	if filter.WithPagination && filter.Limit > 0 {
		body.Pagination = &types.Pagination{
			TotalCount: total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: int((total + uint64(filter.Limit) - 1) / uint64(filter.Limit)),
		}
	}
	return ctx.JSON(http.StatusOK, &HttpResponse{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps an error to its HTTP status. Internal errors are
// logged with detail and answered with a generic message.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := err.Error()

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		message = httpErr.Message
	} else {
		code = apperrors.CodeFor(err)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("internal error",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
		message = "internal server error"
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}

package api

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    httperr.Code
	message string
}

// bookingErrorStatus is checked in order; the first match wins.
var bookingErrorStatus = []errorMapping{
	{errs.ErrInvalidRange, http.StatusBadRequest, httperr.CodeInvalidRange, "Invalid date range"},
	{errs.ErrInsufficientInventory, http.StatusBadRequest, httperr.CodeInsufficientInventory, "Insufficient inventory"},
	{errs.ErrNotBookable, http.StatusBadRequest, httperr.CodeNotBookable, "Hotel is not bookable"},
	{errs.ErrAllotmentConflict, http.StatusBadRequest, httperr.CodeValidation, "Allotment would drop below reserved units"},
	{errs.ErrDomainValidation, http.StatusBadRequest, httperr.CodeValidation, "Validation failed"},
	{errs.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound, "Not found"},
	{errs.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden, "Forbidden"},
	{errs.ErrIdempotencyMismatch, http.StatusConflict, httperr.CodeIdempotencyMismatch, "Idempotency key reused with a different request"},
	{errs.ErrWriteConflict, http.StatusConflict, httperr.CodeWriteConflict, "Concurrent update, retry the request"},
}

type insufficientDetail struct {
	Date      string `json:"date"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range bookingErrorStatus {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		var insufficient *inventory.InsufficientError
		if m.code == httperr.CodeInsufficientInventory && errs.As(err, &insufficient) {
			detail = insufficientDetail{
				Date:      stay.FormatDate(insufficient.Date),
				Requested: insufficient.Requested,
				Available: insufficient.Available,
			}
		}
		httperr.AbortWithError(c, m.status, m.code, err, m.message, detail)
		return
	}

	slog.Error("unhandled usecase error",
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, msg, nil)
}

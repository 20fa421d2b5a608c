package httperr

import (
	"github.com/gin-gonic/gin"
)

// Code is the machine-readable error class clients switch on.
type Code string

const (
	CodeInvalidRange          Code = "INVALID_RANGE"
	CodeNotFound              Code = "NOT_FOUND"
	CodeNotBookable           Code = "NOT_BOOKABLE"
	CodeInsufficientInventory Code = "INSUFFICIENT_INVENTORY"
	CodeWriteConflict         Code = "WRITE_CONFLICT"
	CodeValidation            Code = "VALIDATION"
	CodeForbidden             Code = "FORBIDDEN"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodeIdempotencyMismatch   Code = "IDEMPOTENCY_MISMATCH"
	CodeInternal              Code = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    Code   `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code Code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

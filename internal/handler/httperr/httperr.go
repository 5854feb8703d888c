package httperr

import (
	"errors"
	"net/http"
	"time"

	"coupon-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// TimestampLayout matches the error envelope's fractional-second timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Error labels appearing verbatim in responses.
const (
	LabelBadRequest        = "Bad Request"
	LabelValidationFailed  = "Validation Failed"
	LabelUnrecognizedField = "Unrecognized field"
	LabelNotFound          = "Not Found"
	LabelConflict          = "Conflict"
	LabelInternal          = "Internal Server Error"
)

// Response is the error envelope rendered for every 4xx/5xx.
type Response struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// AbortWithError renders the envelope and keeps the original error on the
// gin error stack for the logging middleware.
func AbortWithError(c *gin.Context, status int, label, message string, err error) {
	resp := Response{
		Timestamp: time.Now().Format(TimestampLayout),
		Status:    status,
		Error:     label,
		Message:   message,
		Path:      c.Request.URL.Path,
	}

	if err == nil {
		err = errs.New(message)
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError dispatches a domain error to its (status, label)
// tuple. The tagged message is user-visible; anything unmapped becomes an
// opaque 500.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCoupon), errors.Is(err, errs.ErrExpirationDate):
		AbortWithError(c, http.StatusBadRequest, LabelBadRequest, err.Error(), err)
	case errors.Is(err, errs.ErrCouponNotFound):
		AbortWithError(c, http.StatusNotFound, LabelNotFound, err.Error(), err)
	case errors.Is(err, errs.ErrCouponAlreadyDeleted):
		AbortWithError(c, http.StatusConflict, LabelConflict, err.Error(), err)
	default:
		AbortWithError(c, http.StatusInternalServerError, LabelInternal, "An unexpected error occurred", err)
	}
}

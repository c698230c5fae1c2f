package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"clinic-booking/internal/pkg/errs"
)

// Response is the error body of every non-2xx reply:
// {"error":{"message":...},"detail":...}.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// FieldError names one request field that failed binding validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: ErrorBody{Message: msg}, Detail: detail}
}

func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError writes resp and records err on the context for the
// logging and error middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// ValidationDetail lists the failed fields of a binding error, or nil when
// err did not come from the validator.
func ValidationDetail(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter returns a bare engine with the production validators and
// error middleware, without auth.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

// fakeAuth authenticates any request carrying an Authorization header as
// the actor returned by current.
func fakeAuth(current func() patient.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, current())
		c.Next()
	}
}

func mustClock(t *testing.T, hour, minute int) slot.ClockTime {
	t.Helper()
	at, err := slot.NewClockTime(hour, minute)
	require.NoError(t, err)
	return at
}

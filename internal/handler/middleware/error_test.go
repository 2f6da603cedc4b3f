//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"rentwheels/internal/handler/httperr"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/errs"
	"rentwheels/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted handler emits the flat error envelope", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("row locked"), "Booking already settled", nil)
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Booking already settled")
	})

	t.Run("detail payload is carried next to the flat message", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/invalid", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity,
				errs.New("validation failed"), "Validation failed",
				map[string]string{"email": "must look like an email address"})
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/invalid", nil, "")

		var body struct {
			Error  string            `json:"error"`
			Detail map[string]string `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Validation failed", body.Error)
		assert.Equal(t, "must look like an email address", body.Detail["email"])
	})

	t.Run("handler that aborts without writing falls back to the stacked public error", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/silent", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusNotFound, Error: "Booking not found"}
			_ = c.Error(gin.Error{Err: errs.New("no rows"), Type: gin.ErrorTypePublic, Meta: resp})
			c.Abort()
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Booking not found")
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	r.GET("/panic", func(_ *gin.Context) {
		panic("nil pointer somewhere")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

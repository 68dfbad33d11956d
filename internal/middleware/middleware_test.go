package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"empty input", fmt.Errorf("%w: add a subject first", apperrors.ErrEmptyInput), http.StatusUnprocessableEntity, dto.ErrorCodeEmptyInput},
		{"invalid grade", fmt.Errorf("%w: Z", apperrors.ErrInvalidGrade), http.StatusBadRequest, dto.ErrorCodeInvalidGrade},
		{"out of range", apperrors.ErrOutOfRange, http.StatusBadRequest, dto.ErrorCodeOutOfRange},
		{"unknown scale", apperrors.ErrUnknownScale, http.StatusBadRequest, dto.ErrorCodeUnknownScale},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("missing session"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"not found", apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unknown", fmt.Errorf("redis: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/gradebook", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFound())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
	assert.Equal(t, "no route for GET /api/v1/transcripts", resp.Error.Message)
}

func TestHandleAPIError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, fmt.Errorf("dial tcp 10.0.0.1:6379: refused"))

	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestHandleAPIError_Field(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrInvalidGrade, "grade Z is not on the scale").WithField("grade"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "grade", resp.Error.Field)
	assert.Equal(t, "grade Z is not on the scale", resp.Error.Message)
}

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(Session(SessionOptions{CookieName: "cgpa_session", TTL: time.Hour}))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestSession_IssuesCookie(t *testing.T) {
	r := newSessionRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Body.String()
	require.NoError(t, uuid.Validate(id))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cgpa_session", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	r := newSessionRouter()
	existing := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cgpa_session", Value: existing})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, existing, w.Body.String())
}

func TestSession_ReplacesMalformedCookie(t *testing.T) {
	r := newSessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cgpa_session", Value: "../../etc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "../../etc", w.Body.String())
	assert.NoError(t, uuid.Validate(w.Body.String()))
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req dto.AddSubjectRequest
		if !BindJSON(c, &req) {
			return
		}
		c.String(http.StatusOK, req.Name)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"credits":3}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.NotNil(t, resp.Error.Details)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Maths","credits":3,"grade":"A"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maths", w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(Session(SessionOptions{CookieName: "cgpa_session", TTL: time.Hour}), RequestLogger(log))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	line := buf.String()
	assert.Contains(t, line, `"level":"warn"`)
	assert.Contains(t, line, `"path":"/missing"`)
	assert.Contains(t, line, `"status":404`)
	assert.Contains(t, line, `"session":"`)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseID(t *testing.T) {
	tests := map[string]bool{"1": true, "42": true, "0": false, "-3": false, "abc": false, "": false}
	for raw, ok := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, err := parseID(c)
		if ok {
			assert.NoError(t, err, raw)
			assert.Positive(t, id, raw)
		} else {
			assert.Error(t, err, raw)
		}
	}
}

func TestNotFoundFlashesAndRedirects(t *testing.T) {
	log := zap.NewNop().Sugar()
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	r.NoRoute(NotFound(log))
	r.GET("/", func(c *gin.Context) {
		flashes := popFlashes(c, log)
		if assert.Len(t, flashes, 1) {
			c.String(http.StatusOK, flashes[0].Category+":"+flashes[0].Message)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "error:"+msgNotFound, w.Body.String())
}

func TestPopFlashesOrdersSuccessFirst(t *testing.T) {
	log := zap.NewNop().Sugar()
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	r.GET("/", func(c *gin.Context) {
		addFlash(c, log, flashError, "bad")
		addFlash(c, log, flashSuccess, "good")
		got := popFlashes(c, log)
		assert.Equal(t, []Flash{{flashSuccess, "good"}, {flashError, "bad"}}, got)
		assert.Empty(t, popFlashes(c, log))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

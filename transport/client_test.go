package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/github2/resilience"
	"github.com/kbukum/github2/version"
)

// fakeAPI is a minimal v2 API served by gin.
type fakeAPI struct {
	*httptest.Server
	mu   sync.Mutex
	last *http.Request
	form map[string][]string
}

func newFakeAPI(t *testing.T, routes func(r *gin.RouterGroup)) *fakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	api := &fakeAPI{}
	engine := gin.New()
	engine.UseRawPath = true
	engine.Use(func(c *gin.Context) {
		_ = c.Request.ParseForm()
		api.mu.Lock()
		api.last = c.Request
		api.form = c.Request.PostForm
		api.mu.Unlock()
		c.Next()
	})
	routes(engine.Group("/api/v2/json"))
	api.Server = httptest.NewServer(engine)
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) request() (*http.Request, map[string][]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, a.form
}

func newClient(t *testing.T, api *fakeAPI, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = api.URL + "/api/v2"
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestClient_GetDecodesJSON(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show/:login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user": gin.H{"login": c.Param("login"), "public_repo_count": 3}})
		})
	})
	c := newClient(t, api, Config{})

	raw, err := c.Get(context.Background(), "user", "show", "octocat")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"user": map[string]any{"login": "octocat", "public_repo_count": float64(3)},
	}, raw)

	req, _ := api.request()
	assert.Equal(t, version.UserAgent(), req.Header.Get("User-Agent"))
	_, err = uuid.Parse(req.Header.Get(headerRequestID))
	assert.NoError(t, err, "request id must be a uuid")
	assert.Empty(t, req.URL.RawQuery)
}

func TestClient_MultiSegmentPathAndEscaping(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/issues/search/:user/:repo/:state/:term", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"term": c.Param("term"), "state": c.Param("state")})
		})
	})
	c := newClient(t, api, Config{})

	raw, err := c.Get(context.Background(), "issues", "search/octocat", "hello", "open", "a b?c")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"term": "a b?c", "state": "open"}, raw)
}

func TestClient_AccessTokenQuery(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	})
	c := newClient(t, api, Config{AccessToken: "oauth-token"})

	_, err := c.Get(context.Background(), "user", "show")
	require.NoError(t, err)
	req, _ := api.request()
	assert.Equal(t, "oauth-token", req.URL.Query().Get(paramAccessToken))
	assert.Empty(t, req.URL.Query().Get(paramToken))
}

func TestClient_APITokenOnGetAndPost(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
		r.POST("/issues/open/:user/:repo", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"issue": gin.H{"title": c.PostForm("title")}})
		})
	})
	c := newClient(t, api, Config{Login: "octocat", APIToken: "secret"})

	_, err := c.Get(context.Background(), "user", "show")
	require.NoError(t, err)
	req, _ := api.request()
	assert.Equal(t, "octocat", req.URL.Query().Get(paramLogin))
	assert.Equal(t, "secret", req.URL.Query().Get(paramToken))

	raw, err := c.Post(context.Background(), "issues", "open", []string{"octocat", "hello"},
		map[string]any{"title": "Crash", "body": "Stack trace", "skip": nil})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"issue": map[string]any{"title": "Crash"}}, raw)

	req, form := api.request()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, []string{"octocat"}, form[paramLogin])
	assert.Equal(t, []string{"secret"}, form[paramToken])
	assert.Equal(t, []string{"Stack trace"}, form["body"])
	assert.NotContains(t, form, "skip")
	assert.Empty(t, req.URL.Query().Get(paramToken), "post credentials travel in the body")
}

func TestClient_PutAndDelete(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.PUT("/repos/set/:name", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"method": "put"}) })
		r.DELETE("/repos/delete/:name", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"method": "delete"}) })
	})
	c := newClient(t, api, Config{})

	raw, err := c.Put(context.Background(), "repos", "set", []string{"x"}, map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"method": "put"}, raw)

	raw, err = c.Delete(context.Background(), "repos", "delete", []string{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"method": "delete"}, raw)
}

func TestClient_SetCredentials(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	})
	c := newClient(t, api, Config{})
	assert.Empty(t, c.AccessToken())
	assert.Empty(t, c.APIToken())

	c.SetAccessToken("a1")
	c.SetAPIToken("octocat", "t1")
	assert.Equal(t, "a1", c.AccessToken())
	assert.Equal(t, "t1", c.APIToken())
	assert.Equal(t, "octocat", c.Login())

	_, err := c.Get(context.Background(), "user", "show")
	require.NoError(t, err)
	req, _ := api.request()
	assert.Equal(t, "a1", req.URL.Query().Get(paramAccessToken))
	assert.Equal(t, "t1", req.URL.Query().Get(paramToken))
}

func TestClient_APIErrorMessage(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show/:login", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		})
		r.POST("/user/follow/:login", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": []gin.H{{"error": "not authorized"}}})
		})
	})
	c := newClient(t, api, Config{AccessToken: "leaked"})

	_, err := c.Get(context.Background(), "user", "show", "ghost")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Not Found")
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	assert.NotContains(t, tErr.URL, "leaked")

	_, err = c.Post(context.Background(), "user", "follow", []string{"x"}, nil)
	assert.True(t, IsAuth(err))
	assert.Contains(t, err.Error(), "not authorized")
}

func TestClient_SendsOnce(t *testing.T) {
	var calls atomic.Int32
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/commits/list/:user/:repo/:branch", func(c *gin.Context) {
			calls.Add(1)
			c.Status(http.StatusBadGateway)
		})
	})
	c := newClient(t, api, Config{})

	_, err := c.Get(context.Background(), "commits", "list", "u", "r", "master")
	assert.True(t, IsServerError(err))
	assert.True(t, IsRetryable(err), "classification still marks 5xx as retryable")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_EmptyAndInvalidBodies(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.POST("/user/unfollow/:login", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/user/show/:login", func(c *gin.Context) { c.String(http.StatusOK, "<html>") })
	})
	c := newClient(t, api, Config{})

	raw, err := c.Post(context.Background(), "user", "unfollow", []string{"x"}, nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = c.Get(context.Background(), "user", "show", "x")
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, ErrCodeDecode, tErr.Code)
}

func TestClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: base})
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "user", "show", "x")
	assert.True(t, IsConnection(err))
	assert.True(t, IsRetryable(err))
}

func TestClient_RateLimited(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show/:login", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	})
	c := newClient(t, api, Config{RateLimit: resilience.LimiterConfig{Rate: 0.001}})

	_, err := c.Get(context.Background(), "user", "show", "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Get(ctx, "user", "show", "b")
	assert.True(t, IsTimeout(err))
}

func TestClient_CustomHeaders(t *testing.T) {
	api := newFakeAPI(t, func(r *gin.RouterGroup) {
		r.GET("/user/show", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	})
	c := newClient(t, api, Config{Headers: map[string]string{"X-Trace": "1", "User-Agent": "custom"}})
	_, err := c.Get(context.Background(), "user", "show")
	require.NoError(t, err)
	req, _ := api.request()
	assert.Equal(t, "1", req.Header.Get("X-Trace"))
	assert.Equal(t, "custom", req.Header.Get("User-Agent"))
}

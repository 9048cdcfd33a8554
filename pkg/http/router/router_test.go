package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/lintang-b-s/Pyramidx/pkg/engine"
	"github.com/lintang-b-s/Pyramidx/pkg/http/usecases"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type solveEnvelope struct {
	Data struct {
		Feasible    bool    `json:"feasible"`
		MaxSum      *int64  `json:"max_sum"`
		Path        []int32 `json:"path"`
		Message     string  `json:"message"`
		Rows        int     `json:"rows"`
		Evaluations int     `json:"evaluations"`
		Strategy    string  `json:"strategy"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandler(t *testing.T, useRateLimit bool) http.Handler {
	t.Helper()
	log := zap.NewNop()
	e, err := engine.NewEngine(engine.Config{CacheSize: 16}, log)
	require.NoError(t, err)
	return NewAPI(log).Handler(useRateLimit, usecases.NewSolverService(log, e))
}

func doRequest(t *testing.T, h http.Handler, method, target, body, contentType string) (*httptest.ResponseRecorder, solveEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env solveEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestSolveEndpoint(t *testing.T) {
	h := newTestHandler(t, false)

	testCases := []struct {
		name         string
		body         string
		wantStatus   int
		wantFeasible bool
		wantSum      int64
		wantPath     []int32
		wantError    string
	}{
		{
			name:         "feasible",
			body:         `{"triangle":"1\n2 3\n4 5 6\n"}`,
			wantStatus:   http.StatusOK,
			wantFeasible: true,
			wantSum:      8,
			wantPath:     []int32{1, 2, 5},
		},
		{
			name:         "memoized strategy",
			body:         `{"triangle":"1\n2 4\n5 3 1","strategy":"memoized"}`,
			wantStatus:   http.StatusOK,
			wantFeasible: true,
			wantSum:      8,
			wantPath:     []int32{1, 2, 5},
		},
		{
			name:       "infeasible",
			body:       `{"triangle":"2\n4 6\n"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing triangle",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Triangle is a required field",
		},
		{
			name:       "unknown strategy",
			body:       `{"triangle":"1","strategy":"greedy"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Strategy must be one of",
		},
		{
			name:       "malformed row",
			body:       `{"triangle":"1\n2 x\n"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "couldn't parse number x in row '2 x'",
		},
		{
			name:       "blank triangle",
			body:       `{"triangle":"\n \n"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "the input is empty",
		},
		{
			name:       "broken json",
			body:       `{"triangle":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, h, http.MethodPost, "/api/solve", tt.body, "application/json")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, http.StatusText(tt.wantStatus), env.Error.Code)
				assert.Contains(t, env.Error.Message, tt.wantError)
				return
			}

			assert.Equal(t, tt.wantFeasible, env.Data.Feasible)
			if !tt.wantFeasible {
				assert.Nil(t, env.Data.MaxSum)
				assert.Equal(t, "It's impossible to reach a goal with these numbers!", env.Data.Message)
				return
			}
			require.NotNil(t, env.Data.MaxSum)
			assert.Equal(t, tt.wantSum, *env.Data.MaxSum)
			assert.Equal(t, tt.wantPath, env.Data.Path)
		})
	}
}

func TestDefaultEndpoint(t *testing.T) {
	h := newTestHandler(t, false)

	rec, env := doRequest(t, h, http.MethodGet, "/api/default", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Data.MaxSum)
	assert.Equal(t, int64(8186), *env.Data.MaxSum)
	assert.Len(t, env.Data.Path, 15)
	assert.Equal(t, pkg.STRATEGY_BOTTOM_UP, env.Data.Strategy)
}

func TestEnforceJSON(t *testing.T) {
	h := newTestHandler(t, false)

	rec, _ := doRequest(t, h, http.MethodPost, "/api/solve", `{"triangle":"1"}`, "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec, _ = doRequest(t, h, http.MethodPost, "/api/solve", `{"triangle":"1"}`, "application/json; charset=utf-8")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHeartbeat(t *testing.T) {
	h := newTestHandler(t, false)

	rec, _ := doRequest(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	viper.Set(pkg.CONFIG_RATE_LIMIT_RPS, 0.001)
	viper.Set(pkg.CONFIG_RATE_LIMIT_BURST, 1)
	t.Cleanup(viper.Reset)

	h := newTestHandler(t, true)

	rec, _ := doRequest(t, h, http.MethodGet, "/api/default", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, env := doRequest(t, h, http.MethodGet, "/api/default", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Too Many Requests", env.Error.Code)
	assert.Equal(t, "rate limit exceeded", env.Error.Message)
}

type panickingService struct{}

func (panickingService) Solve(ctx context.Context, triangle, strategy string) (*engine.Result, error) {
	panic("unexpected")
}

func (panickingService) SolveDefault(ctx context.Context) (*engine.Result, error) {
	panic("unexpected")
}

func TestRecoverPanic(t *testing.T) {
	h := NewAPI(zap.NewNop()).Handler(false, panickingService{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/default", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Internal Server Error", env.Error.Code)
	assert.Equal(t, "internal server error", env.Error.Message)
}

func TestRealIP(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "10.0.0.1"}, want: "10.0.0.1"},
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, want: "10.0.0.2"},
		{name: "none", headers: map[string]string{}, want: "192.0.2.1:1234"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

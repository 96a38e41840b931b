package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	calls := make([]string, 0)

	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	instrumented := make([]string, 0)
	rt := New(
		WithInstrumentation(func(route Route) func(http.Handler) http.Handler {
			instrumented = append(instrumented, route.Path)
			return tag("instrument")
		}),
		WithRoutes(Route{
			Path:   "/v1/cron/:type/status",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("type"))
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/dataset-refresh/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/v1/cron/:type/status"}, instrumented)
	// Instrumentação envolve a rota inteira; middlewares da rota rodam na ordem declarada
	assert.Equal(t, []string{"instrument", "first", "second", "handler:dataset-refresh"}, calls)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

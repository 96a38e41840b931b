package handler

import (
	"net/http"

	"github.com/vfg2006/funding-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/funding-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/funding-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metrics *middleware.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Overall(service analyzing.Analyzer, xlsx exporter.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overall",
			Method:      http.MethodGet,
			Handler:     GetOverall(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/overall/export",
			Method:      http.MethodGet,
			Handler:     ExportOverall(service, xlsx),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Startups(service analyzing.Analyzer, xlsx exporter.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/startups",
			Method:      http.MethodGet,
			Handler:     ListStartups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/startups/profile",
			Method:      http.MethodGet,
			Handler:     GetStartup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/startups/export",
			Method:      http.MethodGet,
			Handler:     ExportStartup(service, xlsx),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Investors(service analyzing.Analyzer, xlsx exporter.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/investors",
			Method:      http.MethodGet,
			Handler:     ListInvestors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/investors/portfolio",
			Method:      http.MethodGet,
			Handler:     GetInvestor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/investors/export",
			Method:      http.MethodGet,
			Handler:     ExportInvestor(service, xlsx),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dataset(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset",
			Method:      http.MethodGet,
			Handler:     GetDatasetInfo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

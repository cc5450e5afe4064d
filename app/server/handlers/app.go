package handlers

import (
	"docs-site/app/server/acme"
	"docs-site/app/server/constants"
	"docs-site/app/server/metrics"
	"docs-site/app/server/static"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

var methods = []string{http.MethodGet, http.MethodHead}

type App struct {
	l      *zap.Logger      // 日志
	static *static.Resolver // 静态文档
	acme   *acme.Resolver   // ACME 验证
	m      *metrics.Metrics // 指标
}

func NewApp(l *zap.Logger, s *static.Resolver, r *acme.Resolver, m *metrics.Metrics) *App {
	return &App{
		l:      l,
		static: s,
		acme:   r,
		m:      m,
	}
}

// Register 绑定站点路由， ACME 路由优先于通配的静态路由
func (a *App) Register(e *echo.Echo) {
	e.Match(methods, "/", a.Index)
	e.Match(methods, constants.AcmeChallengePathPrefix+":token", a.AcmeChallenge)
	e.Match(methods, "/*", a.Static)
}

// RegisterOps 绑定运维路由（指标与健康检查），使用单独的监听地址
func (a *App) RegisterOps(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(a.m.Handler()))
	e.GET("/healthz", a.HealthCheck)
}

package main

import (
	"docs-site/app/server/apidocs"
	"docs-site/app/server/config"
	"docs-site/app/server/constants"
	"docs-site/app/server/handlers"
	"docs-site/app/server/metrics"
	"docs-site/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// newSiteServer 组装文档站点的 echo 服务
func newSiteServer(cfg *config.Config, l *zap.Logger, handlerApp *handlers.App, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.System.Debug

	// 限流与 API 文档都依赖 RealIP ，不能直接信任客户端的 X-Forwarded-For
	e.IPExtractor = middlewares.IPExtractor(cfg.System.TrustProxy)

	e.Use(middlewares.RequestID())
	e.Use(middlewares.RequestLogger(l))
	e.Use(middleware.Recover())
	e.Use(m.Middleware())
	e.Use(middlewares.HTTPSRedirect(cfg.System.ForceHTTPSRedirect))
	e.Use(middlewares.RateLimit(cfg.System.RateLimit))

	// 绑定路由
	handlerApp.Register(e)

	// 调试模式下添加 API 文档，只允许本机访问
	if cfg.System.Debug {
		if specJSON, err := apidocs.Spec(); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc(constants.DebugAPIDocsPath, specJSON, apidocs.WithAuthorizer(apidocs.LoopbackOnly)))
		}
	}

	return e
}

// newOpsServer 组装指标与健康检查服务，使用单独的端口，避免与文档路径冲突
func newOpsServer(handlerApp *handlers.App) *echo.Echo {
	ops := echo.New()
	ops.HideBanner = true
	ops.HidePort = true
	handlerApp.RegisterOps(ops)

	return ops
}

package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// HealthCheck 检查文档首页可以读取，文档未构建或目录被移除时返回 503
func (a *App) HealthCheck(c echo.Context) error {
	if _, err := a.static.Resolve(""); err != nil {
		a.l.Warn("health check failed", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

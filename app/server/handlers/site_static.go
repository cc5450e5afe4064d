package handlers

import (
	"docs-site/app/server/static"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) Index(c echo.Context) error {
	return a.serveFile(c, "")
}

func (a *App) Static(c echo.Context) error {
	// 使用解码后的路径，不依赖路由参数的转义状态
	return a.serveFile(c, c.Request().URL.Path)
}

func (a *App) serveFile(c echo.Context, p string) error {
	f, err := a.static.Resolve(p)
	if err != nil {
		if !errors.Is(err, static.ErrNotFound) {
			a.l.Warn("failed to resolve static file", zap.String("path", p), zap.Error(err))
		}
		return c.NoContent(http.StatusNotFound)
	}

	return c.Blob(http.StatusOK, f.ContentType, f.Data)
}

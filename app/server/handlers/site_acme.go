package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) AcmeChallenge(c echo.Context) error {
	token := c.Param("token")

	key, err := a.acme.Resolve(token)
	a.m.ObserveChallenge(err == nil)
	if err != nil {
		// 不透露任何配置信息
		a.l.Debug("acme challenge miss", zap.String("token", token))
		return c.NoContent(http.StatusNotFound)
	}

	a.l.Info("acme challenge hit", zap.String("token", token))
	return c.String(http.StatusOK, key)
}

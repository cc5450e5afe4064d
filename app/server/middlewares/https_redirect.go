package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
)

// HTTPSRedirect 在启用时把非 HTTPS 请求永久重定向到 HTTPS 。
// 协议判断使用 echo 的 Scheme ，会参考上游代理的 X-Forwarded-Proto 。
func HTTPSRedirect(enabled bool) echo.MiddlewareFunc {
	return middleware.HTTPSRedirectWithConfig(middleware.RedirectConfig{
		Skipper: func(c echo.Context) bool {
			return !enabled || skipAcmeChallenge(c)
		},
		Code: http.StatusMovedPermanently,
	})
}

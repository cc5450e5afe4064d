package middlewares

import (
	"docs-site/app/server/constants"
	"github.com/labstack/echo/v4"
	"strings"
)

// skipAcmeChallenge ACME 验证请求必须能通过纯 HTTP 直接访问
func skipAcmeChallenge(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, constants.AcmeChallengePathPrefix)
}

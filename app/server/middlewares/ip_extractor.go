package middlewares

import "github.com/labstack/echo/v4"

// IPExtractor 决定 RealIP 的来源。
// 不信任代理时只使用连接地址；信任代理时只接受来自回环与内网地址的 X-Forwarded-For 。
func IPExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

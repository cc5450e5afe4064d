package middlewares

import (
	"docs-site/app/server/constants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"math"
)

// RateLimit 按客户端 RealIP 限流， limit 为每秒请求数， 0 表示不限制
func RateLimit(limit float64) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return limit <= 0 || skipAcmeChallenge(c)
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(limit),
			Burst: burst(limit),
		}),
	})
}

// burst 小于 1 时会拒绝所有请求，过大时转换为 int 会溢出
func burst(limit float64) int {
	return int(math.Min(math.Max(1, math.Ceil(limit)), constants.ServerMaxRateLimit))
}

package constants

import "time"

// 静态文档
const (
	SiteIndexFile       = "index.html"
	SiteDefaultRootPath = "docs/_build/html"
)

// 服务
const (
	ServerDefaultPort     = "5000"
	ServerShutdownTimeout = 10 * time.Second
	ServerMaxRateLimit    = 1e6 // 每秒请求数上限，也是限流 burst 的上限
)

// 调试用路由，只在调试模式下挂载
const (
	DebugAPIDocsPath = "/_debug/api"
)

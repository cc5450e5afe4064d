package config

type Config struct {
	System struct {
		IsProd             bool    // 是否为生产环境
		Debug              bool    // 调试模式，开启开发日志与 API 文档
		Listen             string  // 监听地址（由 host 与 port 拼接）
		MetricsListen      string  // 指标与健康检查的监听地址，为空则不启用
		ForceHTTPSRedirect bool    // 是否将 HTTP 请求重定向到 HTTPS （ ACME 验证请求除外）
		RateLimit          float64 // 每个客户端每秒允许的请求数， 0 表示不限制
		TrustProxy         bool    // 是否信任内网代理传来的 X-Forwarded-For
	}
	Site struct {
		DocumentRoot string // 静态文档的根目录（绝对路径），启动后不再变更
	}
}

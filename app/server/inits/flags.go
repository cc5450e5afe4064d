package inits

import (
	"docs-site/app/server/constants"
	"github.com/urfave/cli/v2"
)

// 命令行参数，均可通过环境变量设置
const (
	FlagHost               = "host"
	FlagPort               = "port"
	FlagRoot               = "root"
	FlagDebug              = "debug"
	FlagMode               = "mode"
	FlagForceHTTPSRedirect = "force-https-redirect"
	FlagMetricsListen      = "metrics-listen"
	FlagRateLimit          = "rate-limit"
	FlagTrustProxy         = "trust-proxy"
)

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagHost,
			Usage:   "host to listen on",
			EnvVars: []string{"HOST"},
		},
		&cli.StringFlag{
			Name:    FlagPort,
			Aliases: []string{"p"},
			Usage:   "port to listen on",
			Value:   constants.ServerDefaultPort,
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    FlagRoot,
			Usage:   "document root holding the built html",
			Value:   constants.SiteDefaultRootPath,
			EnvVars: []string{"DOC_ROOT"},
		},
		&cli.BoolFlag{
			Name:    FlagDebug,
			Usage:   "development logging and API docs",
			EnvVars: []string{"DEBUG"},
		},
		&cli.StringFlag{
			Name:    FlagMode,
			Usage:   "deployment mode, values starting with \"p\" mean production",
			EnvVars: []string{"MODE"},
		},
		&cli.BoolFlag{
			Name:    FlagForceHTTPSRedirect,
			Usage:   "redirect plain HTTP to HTTPS except ACME challenges (default: on in production)",
			EnvVars: []string{"FORCE_HTTPS_REDIRECT"},
		},
		&cli.StringFlag{
			Name:    FlagMetricsListen,
			Usage:   "address for /metrics and /healthz, disabled when empty",
			EnvVars: []string{"METRICS_LISTEN"},
		},
		&cli.Float64Flag{
			Name:    FlagRateLimit,
			Usage:   "requests per second allowed per client, 0 disables",
			EnvVars: []string{"RATE_LIMIT"},
		},
		&cli.BoolFlag{
			Name:    FlagTrustProxy,
			Usage:   "take the client IP from X-Forwarded-For sent by loopback or private-network proxies",
			EnvVars: []string{"TRUST_PROXY"},
		},
	}
}

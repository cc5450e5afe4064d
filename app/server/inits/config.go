package inits

import (
	"docs-site/app/server/config"
	"docs-site/app/server/constants"
	"fmt"
	"github.com/urfave/cli/v2"
	"math"
	"net"
	"os"
	"path/filepath"
	"strings"
)

func Config(c *cli.Context) (*config.Config, error) {
	var cfg config.Config

	// 运行模式
	cfg.System.IsProd = strings.HasPrefix(strings.ToLower(c.String(FlagMode)), "p")
	cfg.System.Debug = c.Bool(FlagDebug)

	// 生产环境默认强制 HTTPS ，可以显式关闭
	if c.IsSet(FlagForceHTTPSRedirect) {
		cfg.System.ForceHTTPSRedirect = c.Bool(FlagForceHTTPSRedirect)
	} else {
		cfg.System.ForceHTTPSRedirect = cfg.System.IsProd
	}

	// 监听地址
	port := c.String(FlagPort)
	if port == "" {
		return nil, fmt.Errorf("%s must not be empty", FlagPort)
	}
	cfg.System.Listen = net.JoinHostPort(c.String(FlagHost), port)
	cfg.System.MetricsListen = c.String(FlagMetricsListen)
	cfg.System.TrustProxy = c.Bool(FlagTrustProxy)

	if rateLimit := c.Float64(FlagRateLimit); rateLimit < 0 || rateLimit > constants.ServerMaxRateLimit || math.IsNaN(rateLimit) {
		return nil, fmt.Errorf("%s must be between 0 and %g", FlagRateLimit, constants.ServerMaxRateLimit)
	} else {
		cfg.System.RateLimit = rateLimit
	}

	// 文档根目录
	root, err := filepath.Abs(c.String(FlagRoot))
	if err != nil {
		return nil, fmt.Errorf("resolve document root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("document root %s is not a directory", root)
	}
	cfg.Site.DocumentRoot = root

	return &cfg, nil
}

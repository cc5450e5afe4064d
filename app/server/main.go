package main

import (
	"context"
	"docs-site/app/server/acme"
	"docs-site/app/server/constants"
	"docs-site/app/server/handlers"
	"docs-site/app/server/inits"
	"docs-site/app/server/metrics"
	"docs-site/app/server/static"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	app := &cli.App{
		Name:   "docs-site",
		Usage:  "serve the built documentation and answer ACME HTTP-01 challenges",
		Flags:  inits.Flags(),
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	// 初始化配置
	cfg, err := inits.Config(c)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// 初始化日志
	l, err := inits.Logger(cfg.System.Debug)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer l.Sync()

	l.Debug("logger initialized")

	// 打开文档目录
	s, err := static.New(cfg.Site.DocumentRoot)
	if err != nil {
		l.Error("error opening document root", zap.String("root", cfg.Site.DocumentRoot), zap.Error(err))
		return err
	}
	defer s.Close()

	// 准备 handler app ， ACME 配置每次请求时从环境变量重新读取
	m := metrics.New()
	handlerApp := handlers.NewApp(l, s, acme.NewResolver(acme.EnvSource{}), m)

	// 准备 echo 服务
	e := newSiteServer(cfg, l, handlerApp, m)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 启动服务，任意一个监听失败都会结束进程
	errChan := make(chan error, 2)

	var ops *echo.Echo
	if cfg.System.MetricsListen != "" {
		ops = newOpsServer(handlerApp)
		go func() {
			if err := ops.Start(cfg.System.MetricsListen); err != nil {
				errChan <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	l.Info("serving documentation",
		zap.String("root", cfg.Site.DocumentRoot),
		zap.String("listen", cfg.System.Listen),
		zap.String("metricsListen", cfg.System.MetricsListen),
		zap.Bool("prod", cfg.System.IsProd),
		zap.Bool("forceHTTPSRedirect", cfg.System.ForceHTTPSRedirect),
	)

	go func() {
		if err := e.Start(cfg.System.Listen); err != nil {
			errChan <- err
		}
	}()

	var runErr error
	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			l.Error("server stopped", zap.Error(err))
			runErr = err
		}
	case <-ctx.Done():
		l.Info("shutting down the server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	if ops != nil {
		if err := ops.Shutdown(shutdownCtx); err != nil {
			l.Error("error shutting down metrics server", zap.Error(err))
		}
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down the server: %w", err)
	}

	return runErr
}

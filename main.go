package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stroke_risk/artifacts"
	"stroke_risk/config"
	"stroke_risk/db"
	"stroke_risk/handlers"
	"stroke_risk/logger"
	"stroke_risk/repository"
	"stroke_risk/services"
	"stroke_risk/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// 工件只在启动时加载一次
	bundle, err := artifacts.Load(cfg)
	if err != nil {
		logger.Error("加载模型工件失败", "dir", cfg.Artifacts.Dir, "error", err)
		os.Exit(1)
	}
	logger.Info("模型工件加载成功", "columns", len(bundle.Columns()))

	views, err := templates.New(cfg.Templates.Dir)
	if err != nil {
		logger.Error("加载页面模板失败", "dir", cfg.Templates.Dir, "error", err)
		os.Exit(1)
	}

	var (
		store services.AssessmentStore
		stats handlers.StatsSource
	)
	if cfg.DB.Enabled {
		conn, err := db.InitMySQLWithConfig(cfg)
		if err != nil {
			logger.Error("初始化MySQL失败", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		repo := repository.NewAssessmentRepo(conn)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			logger.Error("创建评估历史表失败", "error", err)
			os.Exit(1)
		}
		store, stats = repo, repo
		logger.Info("评估历史已启用，MySQL连接成功",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	}

	service := services.NewAssessmentService(bundle, store)
	handler := handlers.NewAssessmentHandler(service, views, stats)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	handlers.RegisterRoutes(r, handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Timeouts.ReadSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeouts.WriteSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeouts.IdleSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("服务器启动", "address", cfg.Server.Addr)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务器异常退出", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器优雅关闭失败", "error", err)
	}
	logger.Info("服务器已退出")
}

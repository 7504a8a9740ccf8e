package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"phonebook/internal/core/config"
	"phonebook/internal/core/logger"
	"phonebook/internal/core/metrics"
	"phonebook/internal/core/server"
	"phonebook/internal/domain"
	"phonebook/internal/feature/contact"
	"phonebook/internal/repo"
	"phonebook/internal/service"
	"phonebook/internal/transport/http/handler"
	"phonebook/internal/transport/http/router"
	"phonebook/internal/validation"
	"phonebook/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	svc := newContactService(cfg.Contacts, log)
	seed(svc, cfg.Contacts.Seed, log)

	// 路由：用户端 + 管理端共用同一份通讯录
	reg := router.NewRegistry().
		RegisterAPI(handler.NewContactHandler(svc)).
		RegisterAdmin(handler.NewAdminHandler(svc))

	srvs := []*http.Server{
		listen("phonebook api", cfg.App.HTTP, router.NewAPIEngine(log, cfg.Limits, reg), log, "/api/v1"),
	}
	if cfg.App.Admin.Port > 0 {
		srvs = append(srvs, listen("admin api", cfg.App.Admin, router.NewAdminEngine(log, cfg.Limits, reg), log, "/admin/v1"))
	}

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, srv := range srvs {
		_ = srv.Shutdown(ctx)
	}
	log.Info("phonebook stopped gracefully")
}

// listen 构建并异步启动一个 HTTP 服务；启动失败直接退出
func listen(name string, h config.HTTP, engine http.Handler, log *zap.Logger, prefix string) *http.Server {
	addr := server.Addr(h.Host, h.Port)
	srv := server.BuildServer(
		addr, engine, log,
		time.Duration(h.ReadTimeoutSec)*time.Second,
		time.Duration(h.WriteTimeoutSec)*time.Second,
		time.Duration(h.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := h.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(h.Port)
	log.Info(name+" starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("prefix", baseURL+prefix),
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(name+" start FAILED", zap.Error(err))
		}
	}()
	return srv
}

func newContactService(c config.Contacts, l *zap.Logger) *service.ContactService {
	var storeOpts []repo.Option
	if c.SanitizeStorePhone {
		storeOpts = append(storeOpts, repo.WithPhoneSanitizer(utils.SanitizeTel))
	}
	store := repo.NewContactStore(storeOpts...)

	engOpts := []validation.Option{
		validation.WithFailureHook(func(form, field string, kind validation.Kind) {
			metrics.ValidationFailure(form, field, string(kind))
		}),
	}
	if c.PhoneDigits > 0 {
		engOpts = append(engOpts, validation.WithRule(contact.FieldPhone, validation.PhoneDigits(c.PhoneDigits)))
	}
	return service.NewContactService(store, validation.NewEngine(l, engOpts...), l, c.Locale)
}

// seed 预置联系人走正常新增流程，不合法的跳过
func seed(svc *service.ContactService, list []config.Seed, l *zap.Logger) {
	for _, s := range list {
		_, err := svc.Create(domain.ContactInput{
			Name:   domain.Some(s.Name),
			Phone:  domain.Some(s.Phone),
			Email:  domain.Some(s.Email),
			Gender: domain.Some(s.Gender),
		})
		if err != nil {
			l.Warn("seed contact skipped", zap.String("name", s.Name), zap.Error(err))
		}
	}
	l.Info("contacts seeded", zap.Int("count", svc.Stats().Count))
}

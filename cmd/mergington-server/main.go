package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yndnr/mergington-go/internal/core/service"
	"github.com/yndnr/mergington-go/internal/infra/buildinfo"
	"github.com/yndnr/mergington-go/internal/infra/confloader"
	"github.com/yndnr/mergington-go/internal/infra/shutdown"
	"github.com/yndnr/mergington-go/internal/infra/tlsroots"
	"github.com/yndnr/mergington-go/internal/server/config"
	"github.com/yndnr/mergington-go/internal/server/httpserver"
	"github.com/yndnr/mergington-go/internal/storage/credential"
	"github.com/yndnr/mergington-go/internal/storage/memory"
	"github.com/yndnr/mergington-go/internal/telemetry/logger"
	"github.com/yndnr/mergington-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
		addr        = flag.String("addr", "", "Override server.http.addr")
		logLevel    = flag.String("log-level", "", "Override log.level")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("mergington-server " + buildinfo.String())
		return nil
	}

	overrides := map[string]any{}
	if *addr != "" {
		overrides["server.http.addr"] = *addr
	}
	if *logLevel != "" {
		overrides["log.level"] = *logLevel
	}

	cfg, err := config.Load(*configFile, confloader.WithOverrides(overrides))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)
	slogLogger := log.Slog()

	info := buildinfo.Get()
	log.Info("starting mergington-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", *configFile,
	)

	teachers, err := credential.NewFileStore(cfg.Auth.TeachersFile, credential.WithLogger(slogLogger))
	if err != nil {
		return fmt.Errorf("load teachers: %w", err)
	}
	log.Info("teachers loaded", "path", teachers.Path(), "count", teachers.Len())

	activities := memory.NewSeededActivityStore()
	sessions := memory.NewSessionStore()

	var recorder service.Recorder
	var registry *metric.Registry
	if cfg.Metrics.Enabled {
		registry = metric.NewRegistry()
		registry.MustRegister(metric.NewActivityCollector(activities))
		recorder = registry
	}

	scope, err := service.ParseLogoutScope(cfg.Auth.LogoutScope)
	if err != nil {
		return err
	}
	authSvc := service.NewAuthService(teachers, sessions, &service.AuthServiceConfig{
		LogoutScope: scope,
		Recorder:    recorder,
	})
	enrollSvc := service.NewEnrollmentService(activities, &service.EnrollmentServiceConfig{
		EnforceCapacity: cfg.Enrollment.EnforceCapacity,
		Recorder:        recorder,
	})

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		AuthService:        authSvc,
		EnrollmentService:  enrollSvc,
		Metrics:            registry,
		Logger:             slogLogger,
		CORSAllowedOrigins: cfg.Server.HTTP.CORSAllowedOrigins,
		EnableAudit:        cfg.Server.HTTP.Audit,
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout, slogLogger)

	var keyPair *tlsroots.KeyPair
	if cfg.Server.HTTP.TLSEnabled() {
		keyPair, err = tlsroots.LoadKeyPair(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile, tlsroots.WithLogger(slogLogger))
		if err != nil {
			return err
		}
		httpServer.SetTLSConfig(keyPair.ServerConfig())
	}

	if cfg.Auth.WatchTeachers || keyPair != nil {
		watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(slogLogger))
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		if cfg.Auth.WatchTeachers {
			if err := teachers.Watch(watcher); err != nil {
				log.Warn("teachers file not watched", "error", err)
			}
		}
		if keyPair != nil {
			if err := keyPair.Watch(watcher); err != nil {
				log.Warn("certificate files not watched", "error", err)
			}
		}
		watcher.StartAsync()
		shutdownHandler.OnShutdown("file-watcher", func(context.Context) error {
			return watcher.Stop()
		})
	}

	shutdownHandler.OnShutdown("http-server", httpServer.Shutdown)

	go func() {
		log.Info("HTTP server listening",
			"addr", httpServer.Addr(),
			"tls", keyPair != nil,
		)

		var err error
		if keyPair != nil {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil {
			log.Error("HTTP server error", "error", err)
			shutdownHandler.Trigger("http server failed")
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(context.Background()); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

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

	"agronat/internal/auth"
	"agronat/internal/config"
	"agronat/internal/handler"
	"agronat/internal/infra"
	"agronat/internal/repository"
	"agronat/internal/router"
	"agronat/internal/scheduler"
	"agronat/internal/service"
	"agronat/internal/worker"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Env)

	db, err := infra.NewDatabase(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	rdb, err := infra.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return err
	}

	mailer := infra.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpirationHours)

	ventaRepo := repository.NewVentaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	medidaRepo := repository.NewMedidaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	trabajoRepo := repository.NewTrabajoRepository(db)

	dispatcher := worker.NewDispatcher(rdb, log)
	notifier := worker.NewStockNotifier(dispatcher, log)

	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, usuarioRepo, notifier, cfg.LowStockThreshold, log)
	chartsSvc := service.NewChartsService(ventaRepo)
	informeSvc := service.NewInformeService(ventaRepo, productoRepo, log)
	authSvc := service.NewAuthService(usuarioRepo, tokens, log)
	productoSvc := service.NewProductoService(productoRepo, log)
	proveedorSvc := service.NewProveedorService(proveedorRepo, productoRepo, log)
	medidaSvc := service.NewMedidaService(medidaRepo, log)
	servicioSvc := service.NewServicioService(servicioRepo, log)
	trabajoSvc := service.NewTrabajoService(trabajoRepo, servicioRepo, usuarioRepo, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(rdb, cfg.WorkerPoolSize, log)
	jobs := worker.NewJobs(informeSvc, mailer, cfg.ReportStoragePath, cfg.ReportRecipient, log)
	jobs.RegisterAll(pool)
	pool.Start(ctx)

	sched := scheduler.New(dispatcher, log)
	if err := sched.Start(cfg.ReportCron); err != nil {
		return err
	}

	engine := router.New(router.Deps{
		Cfg:         cfg,
		Log:         log,
		Redis:       rdb,
		Tokens:      tokens,
		Auth:        handler.NewAuthHandler(authSvc),
		Ventas:      handler.NewVentasHandler(ventaSvc),
		Charts:      handler.NewChartsHandler(chartsSvc),
		Informes:    handler.NewInformesHandler(informeSvc),
		Productos:   handler.NewProductosHandler(productoSvc),
		Proveedores: handler.NewProveedoresHandler(proveedorSvc),
		Medidas:     handler.NewMedidasHandler(medidaSvc),
		Servicios:   handler.NewServiciosHandler(servicioSvc),
		Trabajos:    handler.NewTrabajosHandler(trabajoSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado forzado")
	}

	sched.Stop()
	pool.Wait()
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("cerrando redis")
	}
	log.Info().Msg("servidor detenido")
	return nil
}

func newLogger(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/codec"
	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/crypto"
	handlerhttp "github.com/MKhiriev/go-tab-keeper/internal/handler/http"
	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/server"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/share"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/internal/workers"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// Options select how an App is assembled.
type Options struct {
	// Flags holds the values bound with config.BindFlags.
	Flags *config.Config
	// BuildInfo is reported by the version command and endpoint.
	BuildInfo models.AppBuildInfo
	// Daemon builds the App for the background daemon: logs go to stdout
	// and there is no daemon client, since the App is the daemon.
	Daemon bool
}

type App struct {
	Config     *config.Config
	Logger     *logger.Logger
	Session    *session.Session
	Storages   *store.ClientStorages
	Services   *service.ClientServices
	Background adapter.BackgroundClient

	source host.TabSource
}

func NewApp(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.Flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	var log *logger.Logger
	if opts.Daemon {
		log = logger.NewLogger("tabkeeper-daemon")
	} else {
		log = logger.NewClientLogger("tabkeeper", cfg.Log.File)
	}
	logger.SetLevel(cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), log)
	if err != nil {
		return nil, fmt.Errorf("create storage: %w", err)
	}

	app, err := assemble(cfg, storages, opts, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func assemble(cfg *config.Config, storages *store.ClientStorages, opts Options, log *logger.Logger) (*App, error) {
	compressor, err := codec.NewCompressor(cfg.Share.Compression)
	if err != nil {
		return nil, err
	}
	links := share.NewLinks(crypto.NewShareCipher(compressor), cfg.Share.ViewerURL)

	var shortener adapter.Shortener
	if cfg.Shortener.Enabled() {
		s, err := adapter.NewHTTPShortener(cfg.Shortener)
		if err != nil {
			return nil, err
		}
		shortener = s
	}

	var source host.TabSource
	if cfg.Source.File != "" {
		s, err := host.NewTabSource(cfg.Source)
		if err != nil {
			return nil, err
		}
		source = s
	}

	var background adapter.BackgroundClient
	if !opts.Daemon {
		b, err := adapter.NewHTTPBackgroundClient(cfg.Daemon)
		if err != nil {
			return nil, err
		}
		background = b
	}

	sess := session.New()
	services := service.NewClientServices(service.Dependencies{
		Storages:   storages,
		Source:     source,
		Opener:     host.NewBrowserOpener(),
		Copier:     clipboard.New(cfg.Clipboard),
		Links:      links,
		Shortener:  shortener,
		Background: background,
		Session:    sess,
		BuildInfo:  opts.BuildInfo,
	})

	return &App{
		Config:     cfg,
		Logger:     log,
		Session:    sess,
		Storages:   storages,
		Services:   services,
		Background: background,
		source:     source,
	}, nil
}

// Context attaches the App logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return a.Logger.WithContext(ctx)
}

// HasTabSource reports whether a tab source file is configured.
func (a *App) HasTabSource() bool {
	return a.source != nil
}

// Source returns the configured tab source, or nil.
func (a *App) Source() host.TabSource {
	return a.source
}

// RunDaemon serves the daemon API until ctx ends or a stop signal arrives.
// With a tab source configured, a refresher keeps the session's tabs
// current.
func (a *App) RunDaemon(ctx context.Context) error {
	ctx = a.Context(ctx)

	var jobs []workers.Worker
	if a.source != nil {
		jobs = append(jobs, workers.NewTabRefresher(a.Services.Tabs, a.Config.Daemon.RefreshInterval, a.Logger))
	}

	srv, err := server.NewServer(
		handlerhttp.NewHandler(a.Services, a.Session, a.Logger),
		workers.NewWorkers(jobs...),
		a.Config.Daemon,
		a.Logger,
	)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func (a *App) Close() error {
	return a.Storages.Close()
}

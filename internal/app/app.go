package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"mentorhub/internal/auth"
	"mentorhub/internal/config"
	"mentorhub/internal/gateway"
	apphttp "mentorhub/internal/http"
	"mentorhub/internal/repository"
	"mentorhub/internal/repository/mongodb"
	"mentorhub/internal/repository/sqlite"
	"mentorhub/internal/service"
	"mentorhub/internal/storage"
)

// App owns every long-lived dependency of the server. Handlers receive
// their services from it instead of reaching for globals.
type App struct {
	Config  config.Config
	Logger  *logrus.Logger
	Store   repository.Store
	Gateway *gateway.Client
	Images  storage.ImageStore

	Users      service.UserService
	Hackathons service.HackathonService
	Learning   service.LearningService

	Handler http.Handler
}

// New connects the store and builds services and routes. Callers must Close
// the returned App.
func New(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	images, err := buildImageStore(ctx, cfg, logger)
	if err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Gateway: gateway.NewClient(cfg.Gateway.BaseURL, cfg.GatewayTimeout(), logger),
		Images:  images,
	}

	userOpts := []service.UserOption{}
	if images != nil {
		userOpts = append(userOpts, service.WithImageStore(images))
	}
	a.Users = service.NewUserService(store.Users(), a.Gateway, logger, userOpts...)
	a.Hackathons = service.NewHackathonService(store.Hackathons(), a.Users, a.Gateway, logger)
	a.Learning = service.NewLearningService(store.Users(), a.Gateway, logger)

	handler := apphttp.NewHandler(
		a.Users,
		a.Hackathons,
		a.Learning,
		auth.NewIssuer(cfg.Auth.JWTSecret, cfg.TokenTTL()),
		logger,
		apphttp.Options{
			CookieSecure:   cfg.Auth.CookieSecure,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
	)
	a.Handler = apphttp.NewRouter(handler)

	return a, nil
}

// Close disconnects the store.
func (a *App) Close(ctx context.Context) error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close(ctx)
}

// OpenStore connects the configured database. SQLite schemas are migrated
// on open.
func OpenStore(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (repository.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := sqlite.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.WithField("path", cfg.Database.Path).Info("using sqlite store")
		return sqlite.NewStore(db), nil
	case config.DriverMongo:
		store, err := mongodb.Connect(ctx, cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		logger.WithField("database", cfg.Database.Name).Info("using mongo store")
		return store, nil
	default:
		return nil, errors.New("unknown database driver " + cfg.Database.Driver)
	}
}

func buildImageStore(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (storage.ImageStore, error) {
	if cfg.Storage.Bucket == "" {
		logger.Info("storage bucket not configured, profile images are stored as given")
		return nil, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client, storage.Options{
		Bucket:        cfg.Storage.Bucket,
		KeyPrefix:     cfg.Storage.KeyPrefix,
		Region:        cfg.Storage.Region,
		Endpoint:      cfg.Storage.Endpoint,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}), nil
}

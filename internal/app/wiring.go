// Package app assembles the storage backend and services from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/config"
	"github.com/jask/drawboard/internal/database"
	"github.com/jask/drawboard/internal/database/repository"
	"github.com/jask/drawboard/internal/service"
	"github.com/jask/drawboard/internal/storage"
	"github.com/jask/drawboard/internal/storage/postgres"
	s3store "github.com/jask/drawboard/internal/storage/s3"
)

// Runtime is everything a command needs to work on the board.
type Runtime struct {
	Store   storage.BlobStore
	State   *service.StateService
	Session *service.Session
	Ingest  *service.IngestService
	Layouts []service.Layout

	closers []func() error
}

// Close releases the storage backend.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

// Build opens storage, loads import layouts and restores the saved board.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*Runtime, error) {
	if log == nil {
		log = zap.NewNop()
	}
	store, closer, err := OpenStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{Store: store}
	if closer != nil {
		rt.closers = append(rt.closers, closer)
	}

	layouts, err := service.LoadLayouts(cfg.Import.LayoutsFile)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("import layouts: %w", err)
	}
	layout, err := service.FindLayout(layouts, cfg.Import.Layout)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Layouts = layouts
	rt.Ingest = &service.IngestService{Layout: layout, Log: log.Named("ingest")}
	rt.State = &service.StateService{Blobs: store, Key: cfg.Storage.Key, Log: log.Named("state")}
	rt.Session = service.NewSession(rt.State, log.Named("session"))
	if err := rt.Session.Open(ctx); err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("open board: %w", err)
	}
	return rt, nil
}

// OpenStore returns the configured blob backend and a closer (nil when there
// is nothing to release).
func OpenStore(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (storage.BlobStore, func() error, error) {
	driver := storage.Driver(strings.ToLower(strings.TrimSpace(cfg.Driver)))
	log.Debug("opening store", zap.String("driver", string(driver)))
	switch driver {
	case storage.DriverMemory:
		return storage.NewMemory(), nil, nil
	case storage.DriverFile:
		s, err := storage.NewFile(cfg.Dir)
		return s, nil, err
	case storage.DriverSQLite, "":
		return openSQLite(cfg)
	case storage.DriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, nil, errors.New("storage.postgres_dsn is required for the postgres driver")
		}
		s, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case storage.DriverS3:
		s, err := s3store.New(ctx, s3store.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
		return s, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func openSQLite(cfg config.StorageConfig) (storage.BlobStore, func() error, error) {
	driver := cfg.SQLiteDriver
	if driver == "" {
		driver = database.DriverCGo
	}
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(driver, cfg.SQLitePath); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(driver, cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	return repository.NewStateRepo(db), db.Close, nil
}

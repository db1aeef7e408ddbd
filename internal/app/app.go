// Package app provides the application layer that orchestrates business logic.
// It sits between the CLI handlers and the auth/task packages so commands stay
// thin adapters over one set of operations.
package app

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/smarttask/internal/auth"
	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/store"
	"github.com/josephgoksu/smarttask/types"
)

// Context holds shared dependencies for all app operations.
type Context struct {
	DataDir  string
	Lines    store.LineStore
	Students *auth.Directory
	Tasks    *task.Store
	Log      *logger.Logger

	lock *store.DirLock
}

// Options tunes NewContext beyond the backing store.
type Options struct {
	BcryptCost  int
	AuthOptions []auth.Option
	TaskOptions []task.Option
}

// NewContext builds the directory and task store over an already open LineStore.
func NewContext(lines store.LineStore, log *logger.Logger, opts Options) *Context {
	if log == nil {
		log = logger.Nop()
	}
	authOpts := append([]auth.Option{
		auth.WithLogger(log),
		auth.WithHasher(auth.NewBcryptHasher(opts.BcryptCost)),
	}, opts.AuthOptions...)
	taskOpts := append([]task.Option{task.WithLogger(log)}, opts.TaskOptions...)

	return &Context{
		Lines:    lines,
		Students: auth.NewDirectory(lines, authOpts...),
		Tasks:    task.NewStore(lines, taskOpts...),
		Log:      log,
	}
}

// Open locks dataDir, opens the configured backend and loads both stores.
// The caller must Close the returned context.
func Open(cfg types.AppConfig, dataDir string, log *logger.Logger) (*Context, error) {
	lock, err := store.AcquireDirLock(dataDir)
	if err != nil {
		return nil, err
	}

	lines, err := openLineStore(cfg.Data.Backend, dataDir)
	if err != nil {
		_ = lock.Release()
		return nil, err
	}

	ctx := NewContext(lines, log, Options{BcryptCost: cfg.Auth.BcryptCost})
	ctx.DataDir = dataDir
	ctx.lock = lock
	return ctx, nil
}

func openLineStore(backend, dataDir string) (store.LineStore, error) {
	switch backend {
	case "", config.BackendFile:
		return store.NewOsFlatFileStore(dataDir)
	case config.BackendSQLite:
		return store.NewSQLiteLineStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown data backend %q", backend)
	}
}

// Close releases the backend and the data directory lock.
func (c *Context) Close() error {
	var errs []error
	if c.Lines != nil {
		errs = append(errs, c.Lines.Close())
	}
	if c.lock != nil {
		errs = append(errs, c.lock.Release())
	}
	return errors.Join(errs...)
}

// Backup copies the data files into destDir.
func (c *Context) Backup(destDir string) error {
	if err := c.Lines.Backup(destDir); err != nil {
		return fmt.Errorf("backup to %s: %w", destDir, err)
	}
	c.Log.Infow("data backed up", "dest", destDir)
	return nil
}

// Package cli implements the interactive LinguaLink shell: the local
// replacement for the web dashboard. It is the only layer that renders
// store errors to the user; the stores themselves never log.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/alebedenko/lingualink/internal/accounts"
	"github.com/alebedenko/lingualink/internal/apikeys"
	"github.com/alebedenko/lingualink/internal/avatars"
	"github.com/alebedenko/lingualink/internal/config"
	"github.com/alebedenko/lingualink/internal/dbx"
	"github.com/alebedenko/lingualink/internal/filex"
	"github.com/alebedenko/lingualink/internal/kvstore"
	"github.com/alebedenko/lingualink/internal/logging"
	"github.com/alebedenko/lingualink/internal/session"
	"github.com/alebedenko/lingualink/internal/settings"
)

type App struct {
	config   *config.Config
	store    kvstore.Store
	db       *sql.DB                      // nil for the memory backend
	txStore  func(dbx.DBTX) kvstore.Store // tx-scoped store, nil for memory
	accounts *accounts.Service
	sessions *session.Manager
	settings *settings.Service
	apikeys  *apikeys.Service
	avatars  avatars.Store
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	// current mirrors the persisted session pointer for prompt rendering.
	current *accounts.Profile
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	switch cfg.Backend {
	case config.BackendMemory:
		a.store = kvstore.NewMemoryStore()
	case config.BackendSQLite:
		db, err := kvstore.OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("error opening store: %w", err)
		}
		a.db = db
		a.store = kvstore.NewSQLiteStore(db)
		a.txStore = func(tx dbx.DBTX) kvstore.Store { return kvstore.NewSQLiteStore(tx) }
	case config.BackendPostgres:
		db, err := kvstore.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("error opening store: %w", err)
		}
		a.db = db
		a.store = kvstore.NewPostgresStore(db)
		a.txStore = func(tx dbx.DBTX) kvstore.Store { return kvstore.NewPostgresStore(tx) }
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	a.sessions = session.NewManager(a.store)
	a.accounts = accounts.NewService(a.store, a.sessions)
	a.settings = settings.NewService(a.store)
	a.apikeys = apikeys.NewService(a.store, []byte(cfg.SecretKey))

	switch cfg.AvatarBackend {
	case config.AvatarBackendS3:
		a.avatars = avatars.NewS3Store(avatars.S3Options{
			RootUser:        cfg.S3RootUser,
			RootPassword:    cfg.S3RootPassword,
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			BaseEndpoint:    cfg.S3BaseEndpoint,
			PresignValidity: cfg.PresignValidityDuration,
		})
	default:
		dir, err := filex.EnsureSubdDir(cfg.AvatarDir)
		if err != nil {
			return nil, err
		}
		st, err := avatars.NewDirStore(dir)
		if err != nil {
			return nil, err
		}
		a.avatars = st
	}

	// pick up a session left by a previous run
	p, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	a.current = p

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing store", "err", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// refreshCurrent re-reads the session pointer after operations that may
// have changed it behind the cached copy.
func (a *App) refreshCurrent(ctx context.Context) {
	p, err := a.sessions.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "error reading session", "err", err)
		return
	}
	a.current = p
}

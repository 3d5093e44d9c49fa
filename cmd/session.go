package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/db"
	"github.com/ramanasai/journal/internal/encryption"
	"github.com/ramanasai/journal/internal/journal"
	"github.com/ramanasai/journal/internal/logging"
)

const passphraseEnv = "JOURNAL_PASSPHRASE"

// session is an open journal for the duration of one command.
type session struct {
	dbh   *sql.DB
	store *db.Store
	svc   *journal.Service
}

func openSession(ctx context.Context) (*session, error) {
	log := logging.FromContext(ctx)

	path := cfg.Database.Path
	if path == "" {
		var err error
		if path, err = db.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	dbh, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var enc *encryption.Encryptor
	if cfg.Encryption.Enabled {
		pass := os.Getenv(passphraseEnv)
		if pass == "" {
			_ = dbh.Close()
			return nil, db.ErrLocked
		}
		enc, err = encryption.New(pass, filepath.Join(filepath.Dir(path), "journal.salt"))
		if err != nil {
			_ = dbh.Close()
			return nil, err
		}
	}

	store, err := db.NewStore(dbh, enc)
	if err != nil {
		_ = dbh.Close()
		if errors.Is(err, encryption.ErrDecrypt) {
			return nil, fmt.Errorf("wrong passphrase in %s: %w", passphraseEnv, err)
		}
		return nil, err
	}

	log.Debug("journal opened", slog.String("path", path), slog.Bool("encrypted", store.Encrypted()))
	return &session{dbh: dbh, store: store, svc: journal.NewService(store, cfg.Now)}, nil
}

func (s *session) Close() error { return s.dbh.Close() }

// today is the calendar day in the configured timezone.
func today() time.Time { return daterange.Day(cfg.Now()) }

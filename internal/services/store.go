package services

import (
	"go.uber.org/zap"

	"oleander_app_echo/internal/config"
)

// OpenSessionStore picks the session backend from cfg: Redis when REDIS_URL
// is set, then Postgres when DATABASE_URL is set, otherwise memory. The
// returned cleanup func releases the backend's connections.
func OpenSessionStore(cfg config.Config, logger *zap.Logger) (SessionStore, func(), error) {
	switch {
	case cfg.RedisURL != "":
		cache, err := NewRedisCache(cfg.RedisURL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using redis view session store")
		return NewRedisSessionStore(cache, cfg.SessionTTL), func() { _ = cache.Close() }, nil

	case cfg.DatabaseURL != "":
		db, err := InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		store, cleanup, err := OpenGormSessionStore(db, cfg.SessionTTL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using postgres view session store")
		return store, cleanup, nil
	}

	logger.Info("Using in-memory view session store")
	return NewMemoryStore(cfg.SessionTTL), func() {}, nil
}

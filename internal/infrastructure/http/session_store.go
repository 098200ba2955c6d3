package http

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/boj/redistore"
	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/sessions"

	"github.com/ericwen511/fintentacle-backend/internal/config"
)

// NewSessionStore builds the Redis-backed session store. Sessions live
// server-side so a logout or account deactivation kills them immediately;
// the cookie only carries the session id.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	pool := &redis.Pool{
		MaxIdle:     10,
		MaxActive:   0,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			var options []redis.DialOption
			if cfg.Redis.Username != "" {
				options = append(options, redis.DialUsername(cfg.Redis.Username))
			}
			if cfg.Redis.Password != "" {
				options = append(options, redis.DialPassword(cfg.Redis.Password))
			}
			if cfg.Redis.TLS {
				options = append(options,
					redis.DialUseTLS(true),
					redis.DialTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
				)
			}
			return redis.Dial("tcp", cfg.Redis.Address, options...)
		},
	}

	store, err := redistore.NewRediStoreWithPool(pool, []byte(cfg.Session.Secret))
	if err != nil {
		return nil, err
	}

	store.SetKeyPrefix("session:")
	store.SetMaxAge(cfg.Session.ExpireMin * 60)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.ExpireMin * 60,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return store, nil
}

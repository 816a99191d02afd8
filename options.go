package profilestore

import (
	"github.com/hupe1980/profilestore/credential"
)

type options struct {
	logger *Logger
	hasher credential.Hasher
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithHasher configures the credential hasher.
//
// If nil is passed, the default bcrypt hasher is used. Supplying a
// pass-through hasher reproduces plaintext storage; don't.
func WithHasher(h credential.Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = credential.NewBcryptHasher(0)
		}
		o.hasher = h
	}
}

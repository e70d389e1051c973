package tlsroots

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"sync"

	"github.com/yndnr/mergington-go/internal/infra/confloader"
)

// KeyPair holds the server certificate and swaps it in place on reload,
// so renewed certificates apply to new handshakes without a restart.
type KeyPair struct {
	certFile string
	keyFile  string
	logger   *slog.Logger

	mu   sync.RWMutex
	cert *tls.Certificate
}

// KeyPairOption configures a KeyPair.
type KeyPairOption func(*KeyPair)

// WithLogger sets the logger for reload events.
func WithLogger(logger *slog.Logger) KeyPairOption {
	return func(k *KeyPair) {
		k.logger = logger
	}
}

// LoadKeyPair loads the certificate and key. Failure here is a startup error.
func LoadKeyPair(certFile, keyFile string, opts ...KeyPairOption) (*KeyPair, error) {
	k := &KeyPair{
		certFile: certFile,
		keyFile:  keyFile,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}

	if err := k.Reload(); err != nil {
		return nil, fmt.Errorf("tlsroots: initial load: %w", err)
	}
	return k, nil
}

// Reload re-reads the key pair. On error the current certificate stays.
func (k *KeyPair) Reload() error {
	cert, err := tls.LoadX509KeyPair(k.certFile, k.keyFile)
	if err != nil {
		return fmt.Errorf("load key pair: %w", err)
	}

	k.mu.Lock()
	k.cert = &cert
	k.mu.Unlock()

	k.logger.Info("certificate loaded", "cert_file", k.certFile)
	return nil
}

// GetCertificate implements tls.Config.GetCertificate.
func (k *KeyPair) GetCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.cert, nil
}

// ServerConfig returns a server TLS config backed by this key pair.
func (k *KeyPair) ServerConfig() *tls.Config {
	return &tls.Config{
		GetCertificate: k.GetCertificate,
		MinVersion:     tls.VersionTLS12,
	}
}

// Watch reloads the pair whenever w reports a change to the cert or key file.
func (k *KeyPair) Watch(w *confloader.Watcher) error {
	reload := func(string) {
		if err := k.Reload(); err != nil {
			k.logger.Error("certificate reload failed, keeping previous certificate",
				"cert_file", k.certFile,
				"error", err,
			)
		}
	}
	for _, path := range []string{k.certFile, k.keyFile} {
		if err := w.Watch(path, reload); err != nil {
			return fmt.Errorf("tlsroots: watch %s: %w", path, err)
		}
	}
	return nil
}

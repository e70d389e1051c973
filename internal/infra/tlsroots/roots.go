package tlsroots

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ErrNoCertsFound is returned when a PEM input holds no certificates.
var ErrNoCertsFound = errors.New("tlsroots: no certificates found in PEM data")

// NewPool returns the system roots plus the certificates in each CA file.
// Systems without a readable system pool start from an empty pool.
func NewPool(caFiles ...string) (*x509.CertPool, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}
	for _, path := range caFiles {
		if path == "" {
			continue
		}
		if err := AddCertFile(pool, path); err != nil {
			return nil, err
		}
	}
	return pool, nil
}

// AddCertFile adds every certificate of a PEM file to pool.
func AddCertFile(pool *x509.CertPool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tlsroots: read CA file %s: %w", path, err)
	}
	return AddCertPEM(pool, data)
}

// AddCertPEM adds certificates from PEM-encoded data. Non-certificate
// blocks are skipped.
func AddCertPEM(pool *x509.CertPool, pemData []byte) error {
	added := 0
	for len(pemData) > 0 {
		var block *pem.Block
		block, pemData = pem.Decode(pemData)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return fmt.Errorf("tlsroots: parse certificate: %w", err)
		}
		pool.AddCert(cert)
		added++
	}

	if added == 0 {
		return ErrNoCertsFound
	}
	return nil
}

// ClientConfig builds the client TLS config used by the CLI.
func ClientConfig(caFile string, insecureSkipVerify bool) (*tls.Config, error) {
	pool, err := NewPool(caFile)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		RootCAs:            pool,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // opt-in flag for self-signed dev servers
	}, nil
}

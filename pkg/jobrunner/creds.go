package jobrunner

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// TLSConfig names the PEM files used for transport security. The zero value
// means plaintext.
//
// For a server, CertFile and KeyFile are the server certificate and key and
// CAFile is the client CA; setting CAFile requires and verifies client
// certificates (mTLS).
//
// For a client, CertFile and KeyFile are an optional client certificate and
// CAFile is the server CA. If CAFile is empty, the system roots are used.
type TLSConfig struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

func (c TLSConfig) empty() bool {
	return c.CertFile == "" && c.KeyFile == "" && c.CAFile == ""
}

func (c TLSConfig) serverCredentials() (credentials.TransportCredentials, error) {
	if c.empty() {
		return insecure.NewCredentials(), nil
	}
	tlsConfig, err := serverTLSConfig(c.CertFile, c.KeyFile, c.CAFile)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(tlsConfig), nil
}

func (c TLSConfig) clientCredentials() (credentials.TransportCredentials, error) {
	if c.empty() {
		return insecure.NewCredentials(), nil
	}
	tlsConfig, err := clientTLSConfig(c.CertFile, c.KeyFile, c.CAFile)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(tlsConfig), nil
}

// serverTLSConfig creates a TLS configuration for a server. It requires a
// server certificate and key file. If a client CA certificate file is given,
// client certificates are required and verified. It enforces TLS version 1.3.
func serverTLSConfig(serverCertFile, serverKeyFile, clientCACertFile string) (*tls.Config, error) {
	if serverCertFile == "" || serverKeyFile == "" {
		return nil, fmt.Errorf("%w: server cert and key files are required", ErrCertLoad)
	}
	certificate, err := tls.LoadX509KeyPair(serverCertFile, serverKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: server cert file %q, key file %q: %w", ErrCertLoad, serverCertFile, serverKeyFile, err)
	}
	config := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS13,
	}
	if clientCACertFile != "" {
		clientCAs, err := newCertPool(clientCACertFile)
		if err != nil {
			return nil, err
		}
		config.ClientCAs = clientCAs
		config.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return config, nil
}

// clientTLSConfig creates a TLS configuration for a client. The client
// certificate is optional, but cert and key must be given together. It
// optionally uses the provided server CA certificate, if it's not available
// as part of the root certificates. It enforces TLS version 1.3.
func clientTLSConfig(clientCertFile, clientKeyFile, serverCACertFile string) (*tls.Config, error) {
	rootCAs, err := newCertPool(serverCACertFile)
	if err != nil {
		return nil, err
	}
	config := &tls.Config{
		RootCAs:    rootCAs,
		MinVersion: tls.VersionTLS13,
	}
	if clientCertFile == "" && clientKeyFile == "" {
		return config, nil
	}
	certificate, err := tls.LoadX509KeyPair(clientCertFile, clientKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: client cert file %q, key file %q: %w", ErrCertLoad, clientCertFile, clientKeyFile, err)
	}
	config.Certificates = []tls.Certificate{certificate}
	return config, nil
}

// newCertPool creates a x509.CertPool.
//
// If the provided CA certificate file path is empty, it attempts to load the
// system's certificate pool. If the file path is not empty, it loads the
// certificates from the specified file.
func newCertPool(caCertFile string) (*x509.CertPool, error) {
	if caCertFile == "" {
		certPool, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot get system cert pool: %w", ErrCASetup, err)
		}
		return certPool, nil
	}
	certPool := x509.NewCertPool()
	b, err := os.ReadFile(caCertFile) //nolint:gosec // G304: Potential file inclusion via variable
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %q: %w", ErrCASetup, caCertFile, err)
	}
	if !certPool.AppendCertsFromPEM(b) {
		return nil, fmt.Errorf("%w: cannot append %q", ErrCASetup, caCertFile)
	}
	return certPool, nil
}

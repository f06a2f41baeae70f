package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCert genera un certificado autofirmado que vence en notAfter.
func writeCert(t *testing.T, notAfter time.Time) (string, string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		NotBefore:    time.Now().Add(-48 * time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "localhost.pem")
	keyPath := filepath.Join(dir, "localhost-key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certPath, keyPath
}

func TestCheckLocalCert_Valido(t *testing.T) {
	certPath, keyPath := writeCert(t, time.Now().Add(24*time.Hour))
	assert.NoError(t, checkLocalCert(certPath, keyPath))
}

func TestCheckLocalCert_Vencido(t *testing.T) {
	certPath, keyPath := writeCert(t, time.Now().Add(-time.Hour))
	err := checkLocalCert(certPath, keyPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vencido")
}

func TestCheckLocalCert_ArchivoInexistente(t *testing.T) {
	assert.Error(t, checkLocalCert(filepath.Join(t.TempDir(), "no.pem"), "no-key.pem"))
	assert.Error(t, checkLocalCert("", ""))
}

func TestJoinOrigins(t *testing.T) {
	assert.Equal(t, "http://a.com,http://b.com", joinOrigins([]string{"http://a.com", "http://b.com"}))
}

package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"
	"time"
)

// checkLocalCert verifica que el par cert/key exista, cargue y no esté vencido.
func checkLocalCert(certPath, keyPath string) error {
	if certPath == "" || keyPath == "" {
		return fmt.Errorf("TLS_CERT_FILE o TLS_KEY_FILE vacío")
	}
	for _, p := range []string{certPath, keyPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("archivo de certificado: %w", err)
		}
	}
	pair, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return fmt.Errorf("cargar par cert/key: %w", err)
	}
	if len(pair.Certificate) == 0 {
		return fmt.Errorf("el archivo no contiene certificados")
	}
	leaf, err := x509.ParseCertificate(pair.Certificate[0])
	if err != nil {
		return fmt.Errorf("parsear certificado: %w", err)
	}
	if time.Now().After(leaf.NotAfter) {
		return fmt.Errorf("certificado vencido el %s", leaf.NotAfter.Format(time.RFC3339))
	}
	return nil
}

func joinOrigins(origins []string) string {
	return strings.Join(origins, ",")
}

package wxpay

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpPoster_Post(t *testing.T) {
	var gotBody, gotContentType string
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotContentType = r.Header.Get("Content-Type")
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("bad response"))
			return
		}
		_, _ = w.Write([]byte("<xml><return_code>SUCCESS</return_code></xml>"))
	}))
	defer svr.Close()

	poster, err := NewHttpPoster(Config{}, time.Second)
	require.NoError(t, err)

	status, body, err := poster.Post(context.Background(), svr.URL+"/pay/orderquery", "<xml><a>1</a></xml>", false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<xml><return_code>SUCCESS</return_code></xml>", body)
	assert.Equal(t, "<xml><a>1</a></xml>", gotBody)
	assert.Equal(t, "text/xml;charset=utf-8", gotContentType)

	status, body, err = poster.Post(context.Background(), svr.URL+"/broken", "<xml></xml>", false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "bad response", body)
}

func TestHttpPoster_CertificateRequired(t *testing.T) {
	poster, err := NewHttpPoster(Config{}, 0)
	require.NoError(t, err)

	_, _, err = poster.Post(context.Background(), "http://127.0.0.1:1/secapi/pay/refund", "<xml></xml>", true)
	assert.ErrorIs(t, err, ErrCertificateRequired)
}

func TestHttpPoster_Canceled(t *testing.T) {
	poster, err := NewHttpPoster(Config{}, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = poster.Post(ctx, "http://127.0.0.1:1/pay/orderquery", "<xml></xml>", false)
	assert.Error(t, err)
}

// writeMerchantPem 生成自签名证书, 返回证书与PKCS#8私钥的PEM
func writeMerchantPem(t *testing.T) (certPem, keyPem []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(0x1DB2),
		Subject:      pkix.Name{CommonName: testMchId},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	certPem = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPem = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8})
	return certPem, keyPem
}

func TestLoadClientCertificate(t *testing.T) {
	dir := t.TempDir()
	certPem, keyPem := writeMerchantPem(t)

	certPath := filepath.Join(dir, "apiclient_cert.pem")
	keyPath := filepath.Join(dir, "apiclient_key.pem")
	bundlePath := filepath.Join(dir, "apiclient_bundle.pem")
	require.NoError(t, os.WriteFile(certPath, certPem, 0o600))
	require.NoError(t, os.WriteFile(keyPath, keyPem, 0o600))
	require.NoError(t, os.WriteFile(bundlePath, append(append([]byte{}, certPem...), keyPem...), 0o600))

	t.Run("separate key file", func(t *testing.T) {
		cert, err := LoadClientCertificate(certPath, keyPath)
		require.NoError(t, err)
		assert.Len(t, cert.Certificate, 1)
		assert.NotNil(t, cert.PrivateKey)
		assert.Equal(t, testMchId, cert.Leaf.Subject.CommonName)
	})

	t.Run("bundled key", func(t *testing.T) {
		cert, err := LoadClientCertificate(bundlePath, "")
		require.NoError(t, err)
		assert.NotNil(t, cert.PrivateKey)
	})

	t.Run("certificate without key", func(t *testing.T) {
		_, err := LoadClientCertificate(certPath, "")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadClientCertificate(filepath.Join(dir, "missing.pem"), "")
		assert.Error(t, err)
	})

	t.Run("poster with certificate", func(t *testing.T) {
		poster, err := NewHttpPoster(Config{MchCert: certPath, MchKey: keyPath}, time.Second)
		require.NoError(t, err)
		assert.NotNil(t, poster.(*httpPoster).mutual)
	})
}

func TestPrivateKeyFromBundle_Pkcs1(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	raw := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	got, err := privateKeyFromBundle(raw)
	require.NoError(t, err)
	assert.True(t, key.Equal(got))
}

package wxpay

import (
	"context"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wechatpay-apiv3/wechatpay-go/utils"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Poster 发送xml请求, withCert 为true时需携带商户证书(双向认证)
type Poster interface {
	Post(ctx context.Context, url, body string, withCert bool) (statusCode int, respBody string, err error)
}

type httpPoster struct {
	plain  httpc.Service
	mutual httpc.Service
}

// NewHttpPoster 基于 go-zero httpc 的默认实现, 配置了商户证书时额外创建双向认证的客户端
func NewHttpPoster(c Config, timeout time.Duration) (Poster, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	p := &httpPoster{
		plain: httpc.NewServiceWithClient("wxpay", &http.Client{Timeout: timeout}),
	}
	if c.MchCert == "" {
		return p, nil
	}

	cert, err := LoadClientCertificate(c.MchCert, c.MchKey)
	if err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
	}
	p.mutual = httpc.NewServiceWithClient("wxpay-cert", &http.Client{
		Timeout:   timeout,
		Transport: transport,
	})
	return p, nil
}

func (p *httpPoster) Post(ctx context.Context, url, body string, withCert bool) (int, string, error) {
	svc := p.plain
	if withCert {
		if p.mutual == nil {
			return 0, "", ErrCertificateRequired
		}
		svc = p.mutual
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "text/xml;charset=utf-8")

	resp, err := svc.DoRequest(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(result), nil
}

// LoadClientCertificate 加载商户证书及私钥
// keyPath 为空时从证书文件中查找私钥(证书与私钥合并在同一个PEM文件中)
func LoadClientCertificate(certPath, keyPath string) (tls.Certificate, error) {
	certificate, err := utils.LoadCertificateWithPath(certPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load merchant certificate: %w", err)
	}

	var key *rsa.PrivateKey
	if keyPath != "" {
		key, err = utils.LoadPrivateKeyWithPath(keyPath)
	} else {
		var raw []byte
		raw, err = os.ReadFile(certPath)
		if err == nil {
			key, err = privateKeyFromBundle(raw)
		}
	}
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load merchant private key: %w", err)
	}

	logx.Infof("加载商户证书成功, serial_no: %s", utils.GetCertificateSerialNumber(*certificate))
	return tls.Certificate{
		Certificate: [][]byte{certificate.Raw},
		PrivateKey:  key,
		Leaf:        certificate,
	}, nil
}

func privateKeyFromBundle(data []byte) (*rsa.PrivateKey, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, errors.New("no private key found in certificate file")
		}
		switch block.Type {
		case "PRIVATE KEY":
			return utils.LoadPrivateKey(string(pem.EncodeToMemory(block)))
		case "RSA PRIVATE KEY":
			return x509.ParsePKCS1PrivateKey(block.Bytes)
		}
	}
}

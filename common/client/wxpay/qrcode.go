package wxpay

import (
	"encoding/base64"
	"errors"

	"github.com/skip2/go-qrcode"
)

const defaultQrSize = 256

// QrCodePng 将二维码链接渲染为png
func QrCodePng(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("empty qr content")
	}
	if size <= 0 {
		size = defaultQrSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// QrCodeBase64 NATIVE 下单结果的二维码, base64编码的png
func (r *PrepayResult) QrCodeBase64(size int) (string, error) {
	png, err := QrCodePng(r.QrLink, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

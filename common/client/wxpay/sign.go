package wxpay

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign 微信 md5 签名
//
//	STEP1 略过空值, 对key进行升序排序
//	STEP2 对key=value的键值对用&连接起来
//	STEP3 在键值对的最后加上&key=API_KEY
//	STEP4 进行MD5签名并且将所有字符转为大写
func Sign(params Params, key string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
	}
	sb.WriteString("&key=")
	sb.WriteString(key)

	hash := md5.Sum([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// VerifySign 去掉sign字段后重新签名, 与provided严格比较
func VerifySign(params Params, provided, key string) bool {
	unsigned := params.Clone()
	delete(unsigned, "sign")
	return Sign(unsigned, key) == provided
}

// ensureNotForged 确认报文来自微信支付
func ensureNotForged(params Params, key string) error {
	sign := params.Get("sign")
	if sign == "" {
		return ErrForgedNotification
	}
	if !VerifySign(params, sign, key) {
		return ErrSignatureMismatch
	}
	return nil
}

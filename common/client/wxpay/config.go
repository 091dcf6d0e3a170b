package wxpay

import "time"

const (
	DefaultBaseUrl = "https://api.mch.weixin.qq.com"

	unifiedOrderPath = "/pay/unifiedorder"
	orderQueryPath   = "/pay/orderquery"
	refundPath       = "/secapi/pay/refund"
	refundQueryPath  = "/pay/refundquery"

	defaultTimeout     = 10 * time.Second
	defaultExpireAfter = 3600 // 秒
	nonceLength        = 32

	signTypeMD5   = "MD5"
	feeTypeCNY    = "CNY"
	appPackage    = "Sign=WXPay"
	timeLayout    = "20060102150405"
	returnSuccess = "SUCCESS"
	returnFail    = "FAIL"
)

// 微信支付按北京时间解析 time_start / time_expire
var beijing = time.FixedZone("CST", 8*3600)

// Config 微信支付商户配置, 创建客户端后只读
type Config struct {
	AppId     string //应用ID
	MchId     string //商户号
	Key       string //apiV2密钥
	MchCert   string `json:",optional"` //商户证书路径(apiclient_cert.pem), 可同时包含私钥
	MchKey    string `json:",optional"` //商户私钥路径(apiclient_key.pem)
	NotifyUrl string //通知地址

	RefundQueryCert bool `json:",optional"` //退款查询是否携带商户证书, 默认不携带
}

func formatTime(t time.Time) string {
	return t.In(beijing).Format(timeLayout)
}

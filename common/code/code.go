package code

// 网关返回码
const (
	CODE_OK    = 2000 //成功
	CODE_ERROR = 1005 //操作失败(用户toast)    无上报
)

// 微信支付 return_code / result_code
const (
	WECHAT_SUCCESS = "SUCCESS"
	WECHAT_FAIL    = "FAIL"
)

// 微信交易类型
const (
	TRADE_TYPE_APP    = "APP"
	TRADE_TYPE_JSAPI  = "JSAPI"
	TRADE_TYPE_NATIVE = "NATIVE"
)

// 订单交易状态 trade_state
const (
	TRADE_STATE_SUCCESS    = "SUCCESS"    // 支付成功
	TRADE_STATE_REFUND     = "REFUND"     // 转入退款
	TRADE_STATE_NOTPAY     = "NOTPAY"     // 未支付
	TRADE_STATE_CLOSED     = "CLOSED"     // 已关闭
	TRADE_STATE_REVOKED    = "REVOKED"    // 已撤销
	TRADE_STATE_USERPAYING = "USERPAYING" // 用户支付中
	TRADE_STATE_PAYERROR   = "PAYERROR"   // 支付失败
	TRADE_STATE_UNKNOWN    = "UNKNOWN"    // 未知错误
)

// 退款状态 refund_status_$n
const (
	REFUND_STATUS_SUCCESS    = "SUCCESS"    // 退款成功
	REFUND_STATUS_FAIL       = "FAIL"       // 退款失败
	REFUND_STATUS_PROCESSING = "PROCESSING" // 退款处理中
	REFUND_STATUS_NOTSURE    = "NOTSURE"    // 未确定，需商户原退款单号重新发起
	REFUND_STATUS_CHANGE     = "CHANGE"     // 转入代发
	REFUND_STATUS_UNKNOWN    = "UNKNOWN"
)

// 转发给业务方的通知类型
const (
	APP_NOTIFY_TYPE_PAY    = "pay"
	APP_NOTIFY_TYPE_REFUND = "refund"
)

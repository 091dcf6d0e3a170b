package wxpay

import "strconv"

// PrepayResult 统一下单结果, Code 不为 SUCCESS 时只有 Code/Message 有效
type PrepayResult struct {
	Code      string `json:"code"`
	Message   string `json:"message,omitempty"`
	TradeType string `json:"tradeType,omitempty"`
	PrepayId  string `json:"prepayId,omitempty"`
	NonceStr  string `json:"nonceStr,omitempty"`
	QrLink    string `json:"qrLink,omitempty"` // NATIVE 时有效

	JsApiParams *JsApiParams `json:"jsApiParams,omitempty"`
	AppParams   *AppParams   `json:"appParams,omitempty"`
}

// JsApiParams 微信内H5调起支付参数
type JsApiParams struct {
	AppId     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

// AppParams APP调起支付参数
type AppParams struct {
	AppId     string `json:"appid"`
	PartnerId string `json:"partnerid"`
	PrepayId  string `json:"prepayid"`
	Package   string `json:"package"`
	NonceStr  string `json:"noncestr"`
	Timestamp string `json:"timestamp"`
	Sign      string `json:"sign"`
}

// OrderResult 订单查询结果
type OrderResult struct {
	Code           string  `json:"code"`
	Message        string  `json:"message,omitempty"`
	DeviceInfo     *string `json:"deviceInfo,omitempty"`
	OpenId         string  `json:"openId,omitempty"`
	Subscribed     bool    `json:"subscribed"`
	TradeType      string  `json:"tradeType,omitempty"`
	TradeState     string  `json:"tradeState,omitempty"`
	TradeStateDesc string  `json:"tradeStateDesc,omitempty"`
	Bank           string  `json:"bank,omitempty"`
	Fee            *int64  `json:"fee,omitempty"`
	FeeType        string  `json:"feeType,omitempty"`
	CashFee        *int64  `json:"cashFee,omitempty"`
	CashFeeType    string  `json:"cashFeeType,omitempty"`
	CouponFee      *int64  `json:"couponFee,omitempty"`
	CouponCount    *int64  `json:"couponCount,omitempty"`
	TransId        string  `json:"transId,omitempty"`
	OrderNo        string  `json:"orderNo,omitempty"`
	Attach         *string `json:"attach,omitempty"`
	PaidAt         string  `json:"paidAt,omitempty"` // yyyyMMddHHmmss
}

// RefundResult 申请退款结果
type RefundResult struct {
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
	RefundNo string `json:"refundNo"`
}

// RefundQueryResult 退款查询结果
type RefundQueryResult struct {
	Code    string       `json:"code"`
	Message string       `json:"message,omitempty"`
	TransId string       `json:"transId,omitempty"`
	Items   []RefundItem `json:"items,omitempty"`
}

type RefundItem struct {
	Id       string `json:"id"`       // 微信退款单号
	RefundNo string `json:"refundNo"` // 商户退款单号
	Fee      int64  `json:"fee"`      // 申请退款金额, 单位: 分
	Status   string `json:"status"`
}

func isSuccess(resp Params) bool {
	return resp.Get("return_code") == returnSuccess && resp.Get("result_code") == returnSuccess
}

func parseResponseForCode(resp Params) string {
	if resp.Has("err_code") {
		return resp.Get("err_code")
	}
	if resp.Has("return_code") {
		return resp.Get("return_code")
	}
	return returnFail
}

func parseResponseForMessage(resp Params) string {
	if resp.Has("return_msg") {
		return resp.Get("return_msg")
	}
	return resp.Get("err_code_des")
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseOrder(resp Params) *OrderResult {
	return &OrderResult{
		Code:           returnSuccess,
		Message:        parseResponseForMessage(resp),
		DeviceInfo:     resp.Optional("device_info"),
		OpenId:         resp.Get("openid"),
		Subscribed:     resp.Get("is_subscribe") == "Y",
		TradeType:      resp.Get("trade_type"),
		TradeState:     resp.Get("trade_state"),
		TradeStateDesc: resp.Get("trade_state_desc"),
		Bank:           resp.Get("bank_type"),
		Fee:            resp.Int64("total_fee"),
		FeeType:        defaultString(resp.Get("fee_type"), feeTypeCNY),
		CashFee:        resp.Int64("cash_fee"),
		CashFeeType:    defaultString(resp.Get("cash_fee_type"), feeTypeCNY),
		CouponFee:      resp.Int64("coupon_fee"),
		CouponCount:    resp.Int64("coupon_count"),
		TransId:        resp.Get("transaction_id"),
		OrderNo:        resp.Get("out_trade_no"),
		Attach:         resp.Optional("attach"),
		PaidAt:         resp.Get("time_end"),
	}
}

// 微信单次最多返回50笔退款
const maxRefundItems = 50

// parseRefundItems 退款明细以 _$n 为后缀, n 从0开始
func parseRefundItems(resp Params) []RefundItem {
	count, err := strconv.Atoi(resp.Get("refund_count"))
	if err != nil || count <= 0 {
		return nil
	}
	if count > maxRefundItems {
		count = maxRefundItems
	}
	items := make([]RefundItem, 0, count)
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		fee, _ := strconv.ParseInt(resp.Get("refund_fee_"+n), 10, 64)
		items = append(items, RefundItem{
			Id:       resp.Get("refund_id_" + n),
			RefundNo: resp.Get("out_refund_no_" + n),
			Fee:      fee,
			Status:   resp.Get("refund_status_" + n),
		})
	}
	return items
}

package wxpay

import (
	"context"

	"gitee.com/zhuyunkj/wxpay-gateway/common/exception"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	xmlAckSuccess = "<xml><return_code><![CDATA[SUCCESS]]></return_code><return_msg><![CDATA[OK]]></return_msg></xml>"
	xmlAckFailure = "<xml><return_code><![CDATA[FAILURE]]></return_code><return_msg><![CDATA[NO]]></return_msg></xml>"

	plainAckSuccess = "SUCCESS"
	plainAckFailure = "FAIL"
)

type AckFormat int

const (
	AckXml   AckFormat = iota // 应答xml文档
	AckPlain                  // 应答 SUCCESS / FAIL
)

// NotifyPolicy 支付通知的处理策略, 不同接入方式的应答格式与异常处理不同
type NotifyPolicy struct {
	Ack AckFormat
	// return_code 非 SUCCESS 时是否以 NotifyFailure 调用回调
	ReportReturnFailure bool
	// 回调返回的 error 或 panic 是否吞掉并按失败应答
	SwallowCallbackErrors bool
	// 转发给业务方时支付完成时间的字段名
	PaidAtField string
}

var (
	AppNotifyPolicy = NotifyPolicy{
		Ack:                   AckXml,
		ReportReturnFailure:   true,
		SwallowCallbackErrors: true,
		PaidAtField:           "paidAt",
	}
	JsNotifyPolicy = NotifyPolicy{
		Ack:         AckPlain,
		PaidAtField: "payAt",
	}
)

func (p NotifyPolicy) Success() string {
	if p.Ack == AckPlain {
		return plainAckSuccess
	}
	return xmlAckSuccess
}

func (p NotifyPolicy) Failure() string {
	if p.Ack == AckPlain {
		return plainAckFailure
	}
	return xmlAckFailure
}

// TradeUpdate 支付结果通知
type TradeUpdate struct {
	OrderNo   string  // 商户订单号
	Code      string  // result_code, SUCCESS 表示支付成功
	OpenId    string  // 用户在商户appid下的唯一标识
	TradeType string  // APP, NATIVE, JSAPI
	Bank      string  // 付款银行, 如 CMC
	Fee       string  // 订单金额, 单位: 分
	TransId   string  // 微信支付订单号
	Attach    *string // 下单时的透传参数
	PaidAt    string  // 支付完成时间 yyyyMMddHHmmss
}

// Fields 按policy的字段命名输出, 用于转发给业务方
func (t *TradeUpdate) Fields(policy NotifyPolicy) map[string]interface{} {
	paidAt := policy.PaidAtField
	if paidAt == "" {
		paidAt = "paidAt"
	}
	return map[string]interface{}{
		"orderNo":   t.OrderNo,
		"code":      t.Code,
		"openId":    t.OpenId,
		"tradeType": t.TradeType,
		"bank":      t.Bank,
		"fee":       t.Fee,
		"transId":   t.TransId,
		"attach":    t.Attach,
		paidAt:      t.PaidAt,
	}
}

// NotifyFailure return_code 非 SUCCESS 时的错误信息
type NotifyFailure struct {
	Code    string
	Message string
}

// TradeUpdatedFunc 返回true表示业务处理成功, trade 与 failure 只有一个非nil
type TradeUpdatedFunc func(ctx context.Context, trade *TradeUpdate, failure *NotifyFailure) (bool, error)

// HandleNotificationText 处理原始通知内容(xml或query string), 返回应答内容
func (c *Client) HandleNotificationText(ctx context.Context, raw string, policy NotifyPolicy, fn TradeUpdatedFunc) (string, error) {
	params, err := DecodeParams(raw)
	if err != nil {
		logx.WithContext(ctx).Errorf("支付通知解析失败, err:%v", err)
		return policy.Failure(), err
	}
	return c.HandleNotification(ctx, params, policy, fn)
}

// HandleNotification 验签并解析支付通知, 验签失败时返回 ErrForgedNotification 或 ErrSignatureMismatch
func (c *Client) HandleNotification(ctx context.Context, params Params, policy NotifyPolicy, fn TradeUpdatedFunc) (string, error) {
	logger := logx.WithContext(ctx)
	if params.Get("return_code") != returnSuccess {
		if policy.ReportReturnFailure && fn != nil {
			failure := &NotifyFailure{
				Code:    params.Get("return_code"),
				Message: params.Get("return_msg"),
			}
			_ = exception.Try(func() error {
				_, err := fn(ctx, nil, failure)
				return err
			})
		}
		return policy.Failure(), nil
	}

	if err := c.ensureResponseNotForged(params); err != nil {
		logger.Errorf("支付通知验签未通过, out_trade_no:%s err:%v", params.Get("out_trade_no"), err)
		return policy.Failure(), err
	}

	trade := parseTradeUpdate(params)
	if trade.Code != returnSuccess || fn == nil {
		return policy.Failure(), nil
	}

	var handled bool
	call := func() (err error) {
		handled, err = fn(ctx, trade, nil)
		return err
	}
	if policy.SwallowCallbackErrors {
		if err := exception.Try(call); err != nil {
			logger.Errorf("支付通知回调处理失败, out_trade_no:%s err:%v", trade.OrderNo, err)
			return policy.Failure(), nil
		}
	} else if err := call(); err != nil {
		return policy.Failure(), err
	}

	if handled {
		return policy.Success(), nil
	}
	return policy.Failure(), nil
}

func parseTradeUpdate(params Params) *TradeUpdate {
	return &TradeUpdate{
		OrderNo:   params.Get("out_trade_no"),
		Code:      params.Get("result_code"),
		OpenId:    params.Get("openid"),
		TradeType: params.Get("trade_type"),
		Bank:      params.Get("bank_type"),
		Fee:       params.Get("total_fee"),
		TransId:   params.Get("transaction_id"),
		Attach:    params.Optional("attach"),
		PaidAt:    params.Get("time_end"),
	}
}

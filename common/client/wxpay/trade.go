package wxpay

import (
	"context"
	"strconv"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// TradeType 决定统一下单额外需要的字段以及下单成功后的处理
type TradeType string

const (
	TradeTypeApp    TradeType = "APP"
	TradeTypeJsApi  TradeType = "JSAPI"
	TradeTypeNative TradeType = "NATIVE"
)

type orderOptions struct {
	expireAfter int64
	detail      string
	attach      string
	extra       map[string]interface{}
}

type OrderOption func(*orderOptions)

// WithExpireAfter 订单在seconds秒后过期, 0表示不设置过期时间, 默认3600
func WithExpireAfter(seconds int64) OrderOption {
	return func(o *orderOptions) {
		o.expireAfter = seconds
	}
}

// WithDetail 商品详情
func WithDetail(detail string) OrderOption {
	return func(o *orderOptions) {
		o.detail = detail
	}
}

// WithAttach 透传参数, 支付通知中原样返回
func WithAttach(attach string) OrderOption {
	return func(o *orderOptions) {
		o.attach = attach
	}
}

// WithExtra 统一下单的其他可选字段, 如 goods_tag/limit_pay/device_info, 不覆盖已设置的字段
func WithExtra(extra map[string]interface{}) OrderOption {
	return func(o *orderOptions) {
		o.extra = extra
	}
}

// PlaceOrder APP下单, 成功时返回APP调起支付所需参数, 业务失败以 *BusinessError 返回
func (c *Client) PlaceOrder(ctx context.Context, orderNo string, fee int64, description, clientIp string, opts ...OrderOption) (*PrepayResult, error) {
	params := c.orderParams(orderNo, fee, description, clientIp, opts)
	trade, err := c.prepareTrade(ctx, TradeTypeApp, params)
	if err != nil {
		return nil, err
	}
	if trade.Code != returnSuccess {
		return nil, &BusinessError{Code: trade.Code, Message: trade.Message}
	}
	return trade, nil
}

// PlaceJsOrder 公众号/小程序下单, 业务失败时返回 Code 非 SUCCESS 的结果
func (c *Client) PlaceJsOrder(ctx context.Context, openId, orderNo string, fee int64, description, clientIp string, opts ...OrderOption) (*PrepayResult, error) {
	params := c.orderParams(orderNo, fee, description, clientIp, opts)
	params.Set("openid", openId)
	return c.prepareTrade(ctx, TradeTypeJsApi, params)
}

// PlaceNativeOrder 扫码支付下单, 成功时 QrLink 为二维码链接
func (c *Client) PlaceNativeOrder(ctx context.Context, productId, orderNo string, fee int64, description, clientIp string, opts ...OrderOption) (*PrepayResult, error) {
	params := c.orderParams(orderNo, fee, description, clientIp, opts)
	params.Set("product_id", productId)
	return c.prepareTrade(ctx, TradeTypeNative, params)
}

func (c *Client) orderParams(orderNo string, fee int64, description, clientIp string, opts []OrderOption) Params {
	o := &orderOptions{expireAfter: defaultExpireAfter}
	for _, opt := range opts {
		opt(o)
	}

	now := c.now()
	params := Params{}
	params.Set("out_trade_no", orderNo)
	params.SetInt("total_fee", fee)
	params.Set("body", description)
	params.Set("spbill_create_ip", clientIp)
	params.Set("time_start", formatTime(now))
	if o.expireAfter > 0 {
		params.Set("time_expire", formatTime(now.Add(time.Duration(o.expireAfter)*time.Second)))
	}
	params.Set("detail", o.detail)
	params.Set("attach", o.attach)
	for k, v := range o.extra {
		if _, ok := params[k]; !ok {
			params.SetAny(k, v)
		}
	}
	return params
}

// prepareTrade 统一下单, 各交易类型共用
func (c *Client) prepareTrade(ctx context.Context, tradeType TradeType, params Params) (*PrepayResult, error) {
	params["trade_type"] = string(tradeType)
	params.Set("notify_url", c.config.NotifyUrl)
	c.padCommonParams(params)
	params["sign"] = c.signRequest(params)

	resp, err := c.postRequest(ctx, unifiedOrderPath, params, false)
	if err != nil {
		return nil, err
	}

	result := &PrepayResult{Message: parseResponseForMessage(resp)}
	if !isSuccess(resp) {
		result.Code = parseResponseForCode(resp)
		logx.WithContext(ctx).Errorf("统一下单失败, out_trade_no:%s code:%s msg:%s", params.Get("out_trade_no"), result.Code, result.Message)
		return result, nil
	}
	if err = c.ensureResponseNotForged(resp); err != nil {
		return nil, err
	}

	result.Code = returnSuccess
	result.TradeType = resp.Get("trade_type")
	result.PrepayId = resp.Get("prepay_id")
	result.NonceStr = resp.Get("nonce_str")
	result.QrLink = resp.Get("code_url")

	switch tradeType {
	case TradeTypeJsApi:
		result.JsApiParams = c.composeJsApiParams(result.PrepayId)
	case TradeTypeApp:
		result.AppParams = c.createTradeParams(result)
	}
	return result, nil
}

// composeJsApiParams 微信内H5调起支付参数
func (c *Client) composeJsApiParams(prepayId string) *JsApiParams {
	p := &JsApiParams{
		AppId:     c.config.AppId,
		TimeStamp: strconv.FormatInt(c.now().Unix(), 10),
		NonceStr:  c.nonce(nonceLength),
		Package:   "prepay_id=" + prepayId,
		SignType:  signTypeMD5,
	}
	p.PaySign = c.signRequest(Params{
		"appId":     p.AppId,
		"timeStamp": p.TimeStamp,
		"nonceStr":  p.NonceStr,
		"package":   p.Package,
		"signType":  p.SignType,
	})
	return p
}

// createTradeParams APP调起支付参数, noncestr沿用统一下单返回的nonce_str
func (c *Client) createTradeParams(trade *PrepayResult) *AppParams {
	p := &AppParams{
		AppId:     c.config.AppId,
		PartnerId: c.config.MchId,
		PrepayId:  trade.PrepayId,
		Package:   appPackage,
		NonceStr:  trade.NonceStr,
		Timestamp: strconv.FormatInt(c.now().Unix(), 10),
	}
	p.Sign = c.signRequest(Params{
		"appid":     p.AppId,
		"partnerid": p.PartnerId,
		"prepayid":  p.PrepayId,
		"package":   p.Package,
		"noncestr":  p.NonceStr,
		"timestamp": p.Timestamp,
	})
	return p
}

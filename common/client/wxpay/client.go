package wxpay

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/trace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Client 微信支付(apiV2)客户端, 可并发使用
type Client struct {
	config  Config
	baseUrl string
	timeout time.Duration
	poster  Poster

	now      func() time.Time
	nonce    func(n int) string
	refundNo func(now time.Time) string

	// 退款及退款查询的响应默认不验签
	verifyRefundResponses bool
	certForRefundQuery    bool
}

type ClientOption func(*Client)

func NewClient(config Config, opts ...ClientOption) (*Client, error) {
	cli := &Client{
		config:  config,
		baseUrl: DefaultBaseUrl,
		timeout: defaultTimeout,
		now:     time.Now,
		nonce:   RandomString,

		certForRefundQuery: config.RefundQueryCert,
	}
	for _, opt := range opts {
		opt(cli)
	}

	if cli.poster == nil {
		poster, err := NewHttpPoster(config, cli.timeout)
		if err != nil {
			return nil, err
		}
		cli.poster = poster
	}
	if cli.refundNo == nil {
		gen, err := NewRefundNoGenerator(1)
		if err != nil {
			return nil, err
		}
		cli.refundNo = gen.Next
	}
	return cli, nil
}

// WithPoster 替换默认的http实现
func WithPoster(p Poster) ClientOption {
	return func(cli *Client) {
		cli.poster = p
	}
}

// WithBaseUrl 例如沙箱环境
func WithBaseUrl(uri string) ClientOption {
	return func(cli *Client) {
		cli.baseUrl = strings.TrimRight(uri, "/")
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(cli *Client) {
		cli.timeout = timeout
	}
}

func WithClock(now func() time.Time) ClientOption {
	return func(cli *Client) {
		cli.now = now
	}
}

func WithNonceFunc(f func(n int) string) ClientOption {
	return func(cli *Client) {
		cli.nonce = f
	}
}

func WithRefundNoGenerator(g *RefundNoGenerator) ClientOption {
	return func(cli *Client) {
		cli.refundNo = g.Next
	}
}

func WithRefundNoFunc(f func(now time.Time) string) ClientOption {
	return func(cli *Client) {
		cli.refundNo = f
	}
}

// VerifyRefundResponses 退款/退款查询响应是否也做验签
func VerifyRefundResponses(verify bool) ClientOption {
	return func(cli *Client) {
		cli.verifyRefundResponses = verify
	}
}

// WithCertForRefundQuery 退款查询是否携带商户证书, 覆盖 Config.RefundQueryCert
func WithCertForRefundQuery(withCert bool) ClientOption {
	return func(cli *Client) {
		cli.certForRefundQuery = withCert
	}
}

func (c *Client) Config() Config {
	return c.config
}

func (c *Client) padCommonParams(params Params) {
	params["appid"] = c.config.AppId
	params["mch_id"] = c.config.MchId
	params["nonce_str"] = c.nonce(nonceLength)
}

func (c *Client) signRequest(params Params) string {
	return Sign(params, c.config.Key)
}

func (c *Client) ensureResponseNotForged(params Params) error {
	return ensureNotForged(params, c.config.Key)
}

// postRequest 发送已签名的请求并解析响应, 响应必须包含return_code
func (c *Client) postRequest(ctx context.Context, path string, params Params, withCert bool) (Params, error) {
	tracer := otel.GetTracerProvider().Tracer(trace.TraceName)
	ctx, span := tracer.Start(ctx, "wxpay"+path, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("wxpay.mch_id", c.config.MchId),
		attribute.String("wxpay.out_trade_no", params.Get("out_trade_no")),
	)

	logger := logx.WithContext(ctx)
	uri := c.baseUrl + path
	logger.Infof("微信支付请求,地址：%s out_trade_no:%s", uri, params.Get("out_trade_no"))

	status, body, err := c.poster.Post(ctx, uri, EncodeXML(params), withCert)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Errorf("微信支付请求错误,地址：%s err:%v", uri, err)
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if status != http.StatusOK {
		err = &BadResponseError{StatusCode: status, Body: body}
		span.SetStatus(codes.Error, err.Error())
		logger.Errorf("微信支付请求,状态码异常：%d body:%s", status, body)
		return nil, err
	}

	resp, err := DecodeParams(body)
	if err != nil || !resp.Has("return_code") {
		err = &BadResponseError{StatusCode: status, Body: body}
		span.SetStatus(codes.Error, err.Error())
		logger.Errorf("微信支付请求,返回内容异常：%s", body)
		return nil, err
	}
	logger.Infof("微信支付请求,return_code:%s result_code:%s", resp.Get("return_code"), resp.Get("result_code"))
	return resp, nil
}

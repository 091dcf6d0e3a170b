package wxpay

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrepayId = "wx201411101639507cbf6ffd8b0779950874"

func prepaySuccess(tradeType string) Params {
	return Params{
		"return_code": "SUCCESS",
		"return_msg":  "OK",
		"result_code": "SUCCESS",
		"appid":       testAppId,
		"mch_id":      testMchId,
		"nonce_str":   testNonce,
		"prepay_id":   testPrepayId,
		"trade_type":  tradeType,
	}
}

func TestClient_PlaceOrder(t *testing.T) {
	poster := respondWith(signedXml(prepaySuccess("APP")))
	cli := newTestClient(t, poster, time.Unix(1470919875, 0))

	trade, err := cli.PlaceOrder(context.Background(), "1415659990", 1, "报名费", "14.23.150.211")
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", trade.Code)
	assert.Equal(t, "APP", trade.TradeType)
	assert.Equal(t, testPrepayId, trade.PrepayId)
	assert.Nil(t, trade.JsApiParams)
	require.NotNil(t, trade.AppParams)
	assert.Equal(t, AppParams{
		AppId:     testAppId,
		PartnerId: testMchId,
		PrepayId:  testPrepayId,
		Package:   "Sign=WXPay",
		NonceStr:  testNonce,
		Timestamp: "1470919875",
		Sign:      "911C47AE9657533E426108EDDBFB2C20",
	}, *trade.AppParams)

	call, req := poster.lastCall(t)
	assert.Equal(t, DefaultBaseUrl+"/pay/unifiedorder", call.url)
	assert.False(t, call.withCert)
	assert.Equal(t, testAppId, req.Get("appid"))
	assert.Equal(t, testMchId, req.Get("mch_id"))
	assert.Equal(t, testNonce, req.Get("nonce_str"))
	assert.Equal(t, "1415659990", req.Get("out_trade_no"))
	assert.Equal(t, "1", req.Get("total_fee"))
	assert.Equal(t, "报名费", req.Get("body"))
	assert.Equal(t, "14.23.150.211", req.Get("spbill_create_ip"))
	assert.Equal(t, "APP", req.Get("trade_type"))
	assert.Equal(t, testNotifyUrl, req.Get("notify_url"))
	assert.Equal(t, "20160811205115", req.Get("time_start"))
	assert.Equal(t, "20160811215115", req.Get("time_expire"))
	assert.False(t, req.Has("openid"))
	assert.True(t, VerifySign(req, req.Get("sign"), testKey))
}

func TestClient_PlaceOrder_Failures(t *testing.T) {
	tamperedResp := prepaySuccess("APP")
	tamperedResp["sign"] = Sign(tamperedResp, testKey)
	tamperedResp["prepay_id"] = "wx_tampered"

	tests := []struct {
		name        string
		poster      *stubPoster
		wantBizErr  string
		wantErrIs   error
		wantBadResp bool
	}{
		{
			name: "duplicated order",
			poster: respondWith(signedXml(Params{
				"return_code":  "SUCCESS",
				"return_msg":   "订单重复",
				"result_code":  "FAIL",
				"err_code":     "OUT_TRADE_NO_USED",
				"err_code_des": "商户订单号重复",
			})),
			wantBizErr: "订单重复(OUT_TRADE_NO_USED)",
		},
		{
			name: "rejected signature",
			poster: respondWith(EncodeXML(Params{
				"return_code": "FAIL",
				"return_msg":  "签名错误",
				"err_code":    "SIGNERROR",
			})),
			wantBizErr: "签名错误(SIGNERROR)",
		},
		{
			name:      "unsigned response",
			poster:    respondWith(EncodeXML(prepaySuccess("APP"))),
			wantErrIs: ErrForgedNotification,
		},
		{
			name:      "tampered response",
			poster:    respondWith(EncodeXML(tamperedResp)),
			wantErrIs: ErrSignatureMismatch,
		},
		{
			name:        "server error",
			poster:      &stubPoster{status: 500, body: "bad response"},
			wantBadResp: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newTestClient(t, tt.poster, time.Unix(1470919875, 0))
			trade, err := cli.PlaceOrder(context.Background(), "1415659990", 1, "报名费", "14.23.150.211")
			assert.Nil(t, trade)
			require.Error(t, err)

			switch {
			case tt.wantBizErr != "":
				var bizErr *BusinessError
				require.ErrorAs(t, err, &bizErr)
				assert.Equal(t, tt.wantBizErr, err.Error())
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantBadResp:
				var badResp *BadResponseError
				require.ErrorAs(t, err, &badResp)
				assert.Equal(t, "bad response from wxpay: bad response", err.Error())
			}
		})
	}
}

func TestClient_PlaceJsOrder(t *testing.T) {
	now := time.Date(2016, 7, 23, 0, 55, 22, 0, beijing)
	poster := respondWith(signedXml(prepaySuccess("JSAPI")))
	cli := newTestClient(t, poster, now)

	trade, err := cli.PlaceJsOrder(context.Background(), "oUpF8uN95-Ptaags6E_roPHg7AG0", "1415659990", 1, "报名费", "14.23.150.211",
		WithAttach("channel=mp"), WithDetail("报名费明细"))
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", trade.Code)
	assert.Nil(t, trade.AppParams)
	require.NotNil(t, trade.JsApiParams)
	js := trade.JsApiParams
	assert.Equal(t, testAppId, js.AppId)
	assert.Equal(t, "1469206522", js.TimeStamp)
	assert.Equal(t, testNonce, js.NonceStr)
	assert.Equal(t, "prepay_id="+testPrepayId, js.Package)
	assert.Equal(t, "MD5", js.SignType)
	assert.Equal(t, Sign(Params{
		"appId":     js.AppId,
		"timeStamp": js.TimeStamp,
		"nonceStr":  js.NonceStr,
		"package":   js.Package,
		"signType":  js.SignType,
	}, testKey), js.PaySign)

	_, req := poster.lastCall(t)
	assert.Equal(t, "JSAPI", req.Get("trade_type"))
	assert.Equal(t, "oUpF8uN95-Ptaags6E_roPHg7AG0", req.Get("openid"))
	assert.Equal(t, "20160723005522", req.Get("time_start"))
	assert.Equal(t, "20160723015522", req.Get("time_expire"))
	assert.Equal(t, "channel=mp", req.Get("attach"))
	assert.Equal(t, "报名费明细", req.Get("detail"))
}

func TestClient_PlaceJsOrder_Failure(t *testing.T) {
	poster := respondWith(signedXml(Params{
		"return_code":  "SUCCESS",
		"result_code":  "FAIL",
		"err_code":     "ORDERPAID",
		"err_code_des": "该订单已支付",
	}))
	cli := newTestClient(t, poster, time.Now())

	trade, err := cli.PlaceJsOrder(context.Background(), "oUpF8uN95-Ptaags6E_roPHg7AG0", "1415659990", 1, "报名费", "14.23.150.211")
	require.NoError(t, err)
	assert.Equal(t, "ORDERPAID", trade.Code)
	assert.Equal(t, "该订单已支付", trade.Message)
	assert.Nil(t, trade.JsApiParams)
	assert.Empty(t, trade.PrepayId)
}

func TestClient_PlaceOrder_WithoutExpiry(t *testing.T) {
	poster := respondWith(signedXml(prepaySuccess("APP")))
	cli := newTestClient(t, poster, time.Unix(1470919875, 0))

	_, err := cli.PlaceOrder(context.Background(), "1415659990", 1, "报名费", "14.23.150.211", WithExpireAfter(0))
	require.NoError(t, err)

	_, req := poster.lastCall(t)
	assert.Equal(t, "20160811205115", req.Get("time_start"))
	assert.False(t, req.Has("time_expire"))
	assert.False(t, req.Has("attach"))
	assert.False(t, req.Has("detail"))
}

func TestClient_PlaceOrder_WithExtra(t *testing.T) {
	poster := respondWith(signedXml(prepaySuccess("APP")))
	cli := newTestClient(t, poster, time.Unix(1470919875, 0))

	_, err := cli.PlaceOrder(context.Background(), "1415659990", 1, "报名费", "14.23.150.211", WithExtra(map[string]interface{}{
		"goods_tag":    "WXG",
		"limit_pay":    "no_credit",
		"device_info":  1013467007045764,
		"total_fee":    100,
		"out_trade_no": "forged",
		"scene_info":   nil,
	}))
	require.NoError(t, err)

	_, req := poster.lastCall(t)
	assert.Equal(t, "WXG", req.Get("goods_tag"))
	assert.Equal(t, "no_credit", req.Get("limit_pay"))
	assert.Equal(t, "1013467007045764", req.Get("device_info"))
	assert.Equal(t, "1", req.Get("total_fee"))
	assert.Equal(t, "1415659990", req.Get("out_trade_no"))
	assert.False(t, req.Has("scene_info"))
	assert.True(t, VerifySign(req, req.Get("sign"), testKey))
}

func TestClient_PlaceNativeOrder(t *testing.T) {
	resp := prepaySuccess("NATIVE")
	resp["code_url"] = "weixin://wxpay/bizpayurl?pr=SB2vFzb"
	poster := respondWith(signedXml(resp))
	cli := newTestClient(t, poster, time.Now())

	trade, err := cli.PlaceNativeOrder(context.Background(), "12235413214070356458058", "1415659990", 1, "报名费", "14.23.150.211")
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", trade.Code)
	assert.Equal(t, "weixin://wxpay/bizpayurl?pr=SB2vFzb", trade.QrLink)
	assert.Nil(t, trade.AppParams)
	assert.Nil(t, trade.JsApiParams)

	_, req := poster.lastCall(t)
	assert.Equal(t, "NATIVE", req.Get("trade_type"))
	assert.Equal(t, "12235413214070356458058", req.Get("product_id"))

	encoded, err := trade.QrCodeBase64(128)
	require.NoError(t, err)
	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

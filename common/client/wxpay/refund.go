package wxpay

import (
	"context"
)

// RefundTrade 申请退款, 需要商户证书
// fee 订单总金额, refundFee 退款金额, 单位均为分
func (c *Client) RefundTrade(ctx context.Context, orderNo string, fee, refundFee int64, transId string) (*RefundResult, error) {
	params := Params{}
	params.Set("transaction_id", transId)
	params.Set("out_trade_no", orderNo)
	params.Set("out_refund_no", c.refundNo(c.now()))
	params.SetInt("total_fee", fee)
	params.SetInt("refund_fee", refundFee)
	params.Set("refund_fee_type", feeTypeCNY)
	params.Set("op_user_id", c.config.MchId)
	c.padCommonParams(params)
	params["sign"] = c.signRequest(params)

	resp, err := c.postRequest(ctx, refundPath, params, true)
	if err != nil {
		return nil, err
	}

	result := &RefundResult{
		RefundNo: params.Get("out_refund_no"),
		Message:  parseResponseForMessage(resp),
	}
	if !isSuccess(resp) {
		result.Code = parseResponseForCode(resp)
		return result, nil
	}
	if c.verifyRefundResponses {
		if err = c.ensureResponseNotForged(resp); err != nil {
			return nil, err
		}
	}
	result.Code = returnSuccess
	return result, nil
}

// QueryRefund 查询退款
func (c *Client) QueryRefund(ctx context.Context, refundNo, orderNo, transId string) (*RefundQueryResult, error) {
	params := Params{}
	params.Set("transaction_id", transId)
	params.Set("out_trade_no", orderNo)
	params.Set("out_refund_no", refundNo)
	if len(params) == 0 {
		return nil, ErrMissingRefundIdentifier
	}
	c.padCommonParams(params)
	params["sign"] = c.signRequest(params)

	resp, err := c.postRequest(ctx, refundQueryPath, params, c.certForRefundQuery)
	if err != nil {
		return nil, err
	}

	result := &RefundQueryResult{Message: parseResponseForMessage(resp)}
	if !isSuccess(resp) {
		result.Code = parseResponseForCode(resp)
		return result, nil
	}
	if c.verifyRefundResponses {
		if err = c.ensureResponseNotForged(resp); err != nil {
			return nil, err
		}
	}
	result.Code = returnSuccess
	result.TransId = resp.Get("transaction_id")
	result.Items = parseRefundItems(resp)
	return result, nil
}

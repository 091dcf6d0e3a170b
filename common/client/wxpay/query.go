package wxpay

import (
	"context"
)

// QueryOrder 查询订单, orderNo 与 transId 至少提供一个
func (c *Client) QueryOrder(ctx context.Context, orderNo, transId string) (*OrderResult, error) {
	params := Params{}
	params.Set("transaction_id", transId)
	params.Set("out_trade_no", orderNo)
	if len(params) == 0 {
		return nil, ErrMissingTradeIdentifier
	}
	c.padCommonParams(params)
	params["sign"] = c.signRequest(params)

	resp, err := c.postRequest(ctx, orderQueryPath, params, false)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return &OrderResult{
			Code:    parseResponseForCode(resp),
			Message: parseResponseForMessage(resp),
		}, nil
	}
	if err = c.ensureResponseNotForged(resp); err != nil {
		return nil, err
	}
	return parseOrder(resp), nil
}

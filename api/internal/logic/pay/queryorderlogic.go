package pay

import (
	"context"
	"errors"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	"github.com/zeromicro/go-zero/core/logx"
)

type QueryOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewQueryOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *QueryOrderLogic {
	return &QueryOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *QueryOrderLogic) QueryOrder(req *types.QueryOrderReq) (resp *types.ResultResp, err error) {
	order, err := l.svcCtx.WxPay.QueryOrder(l.ctx, req.OrderNo, req.TransId)
	if errors.Is(err, wxpay.ErrMissingTradeIdentifier) {
		res := response.MakeResult(code.CODE_ERROR, "orderNo和transId不能同时为空", nil)
		return &res, nil
	}
	if err != nil {
		l.Errorf("查询订单失败 orderNo:%s transId:%s err:%v", req.OrderNo, req.TransId, err)
		return nil, err
	}
	if order.Code != code.WECHAT_SUCCESS {
		res := response.MakeResult(code.CODE_ERROR, failDesc(order.Code, order.Message), order)
		return &res, nil
	}

	res := response.MakeResult(code.CODE_OK, "", order)
	return &res, nil
}

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

type RefundQueryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefundQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefundQueryLogic {
	return &RefundQueryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RefundQueryLogic) RefundQuery(req *types.RefundQueryReq) (resp *types.ResultResp, err error) {
	result, err := l.svcCtx.WxPay.QueryRefund(l.ctx, req.RefundNo, req.OrderNo, req.TransId)
	if errors.Is(err, wxpay.ErrMissingRefundIdentifier) {
		res := response.MakeResult(code.CODE_ERROR, "refundNo、orderNo、transId不能同时为空", nil)
		return &res, nil
	}
	if err != nil {
		l.Errorf("查询退款失败 refundNo:%s err:%v", req.RefundNo, err)
		return nil, err
	}
	if result.Code != code.WECHAT_SUCCESS {
		res := response.MakeResult(code.CODE_ERROR, failDesc(result.Code, result.Message), result)
		return &res, nil
	}

	res := response.MakeResult(code.CODE_OK, "", result)
	return &res, nil
}

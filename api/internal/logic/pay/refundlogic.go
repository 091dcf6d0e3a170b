package pay

import (
	"context"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	"github.com/zeromicro/go-zero/core/logx"
)

type RefundLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefundLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefundLogic {
	return &RefundLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RefundLogic) Refund(req *types.RefundReq) (resp *types.ResultResp, err error) {
	if req.OrderNo == "" && req.TransId == "" {
		res := response.MakeResult(code.CODE_ERROR, "orderNo和transId不能同时为空", nil)
		return &res, nil
	}
	if req.RefundFee <= 0 || req.RefundFee > req.Fee {
		res := response.MakeResult(code.CODE_ERROR, "退款金额异常", nil)
		return &res, nil
	}

	refund, err := l.svcCtx.WxPay.RefundTrade(l.ctx, req.OrderNo, req.Fee, req.RefundFee, req.TransId)
	if err != nil {
		l.Errorf("申请退款失败 orderNo:%s transId:%s err:%v", req.OrderNo, req.TransId, err)
		return nil, err
	}
	l.Infof("申请退款 orderNo:%s refundNo:%s code:%s", req.OrderNo, refund.RefundNo, refund.Code)
	if refund.Code != code.WECHAT_SUCCESS {
		res := response.MakeResult(code.CODE_ERROR, failDesc(refund.Code, refund.Message), refund)
		return &res, nil
	}

	res := response.MakeResult(code.CODE_OK, "", refund)
	return &res, nil
}

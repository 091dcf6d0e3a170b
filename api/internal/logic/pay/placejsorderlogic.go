package pay

import (
	"context"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlaceJsOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPlaceJsOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlaceJsOrderLogic {
	return &PlaceJsOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PlaceJsOrderLogic) PlaceJsOrder(req *types.PlaceJsOrderReq) (resp *types.ResultResp, err error) {
	trade, err := l.svcCtx.WxPay.PlaceJsOrder(l.ctx, req.OpenId, req.OrderNo, req.Fee, req.Description, req.ClientIp,
		orderOptions(req.ExpireAfter, req.Detail, req.Attach, req.Extra)...)
	if err != nil {
		l.Errorf("JSAPI下单失败 orderNo:%s err:%v", req.OrderNo, err)
		return nil, err
	}
	if trade.Code != code.WECHAT_SUCCESS {
		res := response.MakeResult(code.CODE_ERROR, failDesc(trade.Code, trade.Message), trade)
		return &res, nil
	}

	res := response.MakeResult(code.CODE_OK, "", trade.JsApiParams)
	return &res, nil
}

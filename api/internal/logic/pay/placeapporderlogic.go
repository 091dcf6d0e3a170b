package pay

import (
	"context"
	"errors"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	jsoniter "github.com/json-iterator/go"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlaceAppOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPlaceAppOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlaceAppOrderLogic {
	return &PlaceAppOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PlaceAppOrderLogic) PlaceAppOrder(req *types.PlaceAppOrderReq) (resp *types.ResultResp, err error) {
	trade, err := l.svcCtx.WxPay.PlaceOrder(l.ctx, req.OrderNo, req.Fee, req.Description, req.ClientIp,
		orderOptions(req.ExpireAfter, req.Detail, req.Attach, req.Extra)...)
	var bizErr *wxpay.BusinessError
	if errors.As(err, &bizErr) {
		res := response.MakeResult(code.CODE_ERROR, bizErr.Error(), nil)
		return &res, nil
	}
	if err != nil {
		l.Errorf("APP下单失败 orderNo:%s err:%v", req.OrderNo, err)
		return nil, err
	}

	jsonStr, _ := jsoniter.MarshalToString(trade)
	l.Infof("APP下单成功: %s", jsonStr)
	res := response.MakeResult(code.CODE_OK, "", trade.AppParams)
	return &res, nil
}

package pay

import (
	"context"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	"github.com/zeromicro/go-zero/core/logx"
)

type NativeOrderResp struct {
	*wxpay.PrepayResult
	QrCode string `json:"qrCode,omitempty"` //base64编码的png
}

type PlaceNativeOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPlaceNativeOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlaceNativeOrderLogic {
	return &PlaceNativeOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PlaceNativeOrderLogic) PlaceNativeOrder(req *types.PlaceNativeOrderReq) (resp *types.ResultResp, err error) {
	trade, err := l.svcCtx.WxPay.PlaceNativeOrder(l.ctx, req.ProductId, req.OrderNo, req.Fee, req.Description, req.ClientIp,
		orderOptions(req.ExpireAfter, req.Detail, req.Attach, req.Extra)...)
	if err != nil {
		l.Errorf("NATIVE下单失败 orderNo:%s err:%v", req.OrderNo, err)
		return nil, err
	}
	if trade.Code != code.WECHAT_SUCCESS {
		res := response.MakeResult(code.CODE_ERROR, failDesc(trade.Code, trade.Message), trade)
		return &res, nil
	}

	data := &NativeOrderResp{PrepayResult: trade}
	data.QrCode, err = trade.QrCodeBase64(req.QrSize)
	if err != nil {
		// 二维码生成失败时业务方仍可使用 qrLink
		l.Errorf("二维码生成失败 orderNo:%s err:%v", req.OrderNo, err)
	}
	res := response.MakeResult(code.CODE_OK, "", data)
	return &res, nil
}

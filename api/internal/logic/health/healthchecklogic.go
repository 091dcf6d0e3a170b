package health

import (
	"context"
	"time"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/response"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"

	"github.com/zeromicro/go-zero/core/logx"
)

type HealthCheckLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthCheckLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthCheckLogic {
	return &HealthCheckLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HealthCheckLogic) HealthCheck(req *types.HeaderReq) (resp *types.ResultResp, err error) {
	now := time.Now()
	data := response.HealthResp{
		Time: time.Since(now).Seconds(),
		Sign: req.Xsign,
	}
	res := response.MakeResult(code.CODE_OK, "", data)
	return &res, nil
}

package handler

import (
	"net/http"

	health "gitee.com/zhuyunkj/wxpay-gateway/api/internal/handler/health"
	notify "gitee.com/zhuyunkj/wxpay-gateway/api/internal/handler/notify"
	pay "gitee.com/zhuyunkj/wxpay-gateway/api/internal/handler/pay"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/notify/wechat/app",
				Handler: notify.NotifyWechatAppHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/notify/wechat/jsapi",
				Handler: notify.NotifyWechatJsApiHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.Inter},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/app",
					Handler: pay.PlaceAppOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/jsapi",
					Handler: pay.PlaceJsOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/native",
					Handler: pay.PlaceNativeOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/query",
					Handler: pay.QueryOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/refund",
					Handler: pay.RefundHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/pay/wechat/refund/query",
					Handler: pay.RefundQueryHandler(serverCtx),
				},
			}...,
		),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: health.HealthCheckHandler(serverCtx),
			},
		},
	)
}

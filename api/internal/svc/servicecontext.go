package svc

import (
	"net/http"
	"time"

	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/config"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/middleware"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"gitee.com/zhuyunkj/wxpay-gateway/common/global"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpc"
)

type ServiceContext struct {
	Config config.Config
	Inter  rest.Middleware
	Guard  *middleware.InterMiddleware // 内部接口白名单, 也用于取请求来源地址

	WxPay     *wxpay.Client
	Replay    *global.MemoryCache // 支付通知去重
	Forwarder httpc.Service       // 转发支付结果给业务方
}

func NewServiceContext(c config.Config) *ServiceContext {
	refundNo, err := wxpay.NewRefundNoGenerator(c.SnowFlake.Node())
	logx.Must(err)
	wxCli, err := wxpay.NewClient(c.Wechat, wxpay.WithRefundNoGenerator(refundNo))
	logx.Must(err)

	guard := middleware.NewInterMiddleware(c.Inter.AllowCidrs, c.Inter.TrustedProxies)
	return &ServiceContext{
		Config:    c,
		Inter:     guard.Handle,
		Guard:     guard,
		WxPay:     wxCli,
		Replay:    global.InitMemoryCacheInstance(c.Notify.CacheSize),
		Forwarder: httpc.NewServiceWithClient("notify-forward", &http.Client{
			Timeout: time.Duration(c.Notify.ForwardTimeout) * time.Millisecond,
		}),
	}
}

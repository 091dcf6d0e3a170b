package notify

import (
	"io"
	"net/http"

	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/logic/notify"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 微信通知报文不会超过这个大小
const maxNotifyBody = 64 << 10

// NotifyWechatAppHandler APP支付通知, 应答xml
func NotifyWechatAppHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return notifyWechatHandler(svcCtx, wxpay.AppNotifyPolicy)
}

// NotifyWechatJsApiHandler 公众号/小程序支付通知, 应答 SUCCESS / FAIL
func NotifyWechatJsApiHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return notifyWechatHandler(svcCtx, wxpay.JsNotifyPolicy)
}

func notifyWechatHandler(svcCtx *svc.ServiceContext, policy wxpay.NotifyPolicy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxNotifyBody))
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := notify.NewNotifyWechatLogic(r.Context(), svcCtx, policy)
		ack := l.NotifyWechat(string(body))

		if policy.Ack == wxpay.AckXml {
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ack))
	}
}

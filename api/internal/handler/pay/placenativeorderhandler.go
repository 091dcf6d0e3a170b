package pay

import (
	"net/http"

	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/logic/pay"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func PlaceNativeOrderHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PlaceNativeOrderReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		if req.ClientIp == "" {
			req.ClientIp = svcCtx.Guard.ClientIp(r)
		}
		l := pay.NewPlaceNativeOrderLogic(r.Context(), svcCtx)
		resp, err := l.PlaceNativeOrder(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

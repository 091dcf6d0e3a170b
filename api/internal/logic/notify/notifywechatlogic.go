package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitee.com/zhuyunkj/wxpay-gateway/api/common/notice"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"
	"gitee.com/zhuyunkj/wxpay-gateway/common/client/wxpay"
	"gitee.com/zhuyunkj/wxpay-gateway/common/code"
	"gitee.com/zhuyunkj/wxpay-gateway/common/global"
	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
	"github.com/zeromicro/go-zero/core/logx"
)

const replayKeyPrefix = "wxpay:notify:"

type NotifyWechatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext

	policy wxpay.NotifyPolicy
}

func NewNotifyWechatLogic(ctx context.Context, svcCtx *svc.ServiceContext, policy wxpay.NotifyPolicy) *NotifyWechatLogic {
	return &NotifyWechatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		policy: policy,
	}
}

// NotifyWechat 处理微信支付结果通知, 返回应答微信的内容
func (l *NotifyWechatLogic) NotifyWechat(body string) string {
	l.Slowf("NotifyWechat body: %s", body)

	ack, err := l.svcCtx.WxPay.HandleNotificationText(l.ctx, body, l.policy, l.tradeUpdated)
	switch {
	case errors.Is(err, wxpay.ErrForgedNotification), errors.Is(err, wxpay.ErrSignatureMismatch):
		msg := fmt.Sprintf("微信支付回调 验签失败 err:%v", err)
		l.Error(msg)
		notice.DingdingNotify(l.ctx, l.svcCtx.Config.Alarm.DingDingUrl, msg)
	case err != nil:
		l.Errorf("微信支付回调 处理失败 err:%v", err)
	}
	return ack
}

func (l *NotifyWechatLogic) tradeUpdated(ctx context.Context, trade *wxpay.TradeUpdate, failure *wxpay.NotifyFailure) (bool, error) {
	if failure != nil {
		l.Errorf("微信支付回调 通信失败 code:%s msg:%s", failure.Code, failure.Message)
		return false, nil
	}

	jsonStr, _ := jsoniter.MarshalToString(trade)
	l.Infof("微信支付回调 验签通过: %s", jsonStr)

	key := replayKeyPrefix + trade.TransId
	if trade.TransId == "" {
		key = replayKeyPrefix + "order:" + trade.OrderNo
	}
	ttl := l.svcCtx.Config.Notify.ReplayTtl
	switch l.svcCtx.Replay.Claim(key, ttl) {
	case global.MarkDone:
		l.Infof("回调订单已处理, transaction_id:%s", trade.TransId)
		return true, nil
	case global.MarkPending:
		// 结果未知, 应答失败让微信稍后重试
		l.Infof("回调订单处理中, transaction_id:%s", trade.TransId)
		return false, nil
	}

	if err := l.forward(ctx, trade); err != nil {
		// 允许微信重试时再次转发
		l.svcCtx.Replay.Forget(key)
		return false, err
	}
	l.svcCtx.Replay.Done(key, ttl)
	return true, nil
}

// forward 将支付结果转发给业务方, 只尝试一次
func (l *NotifyWechatLogic) forward(ctx context.Context, trade *wxpay.TradeUpdate) error {
	url := l.svcCtx.Config.Notify.ForwardUrl
	if url == "" {
		return nil
	}

	payload := trade.Fields(l.policy)
	payload["type"] = code.APP_NOTIFY_TYPE_PAY
	body, err := sonic.MarshalString(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.svcCtx.Forwarder.DoRequest(req)
	if err != nil {
		return fmt.Errorf("call business failed, orderNo:%s, err:%w", trade.OrderNo, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call business failed, orderNo:%s, status:%d", trade.OrderNo, resp.StatusCode)
	}
	return nil
}

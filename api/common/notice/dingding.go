package notice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitee.com/zhuyunkj/wxpay-gateway/common/exception"
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	webhookTimeout = 3 * time.Second
	alarmPrefix    = "[wxpay-gateway通知] "
)

type RobotSendReq struct {
	Msgtype  MsgType   `json:"msgtype"`
	At       *At       `json:"at,omitempty"`
	Markdown *Markdown `json:"markdown,omitempty"`
	Text     *Text     `json:"text,omitempty"`
}

type MsgType string

const (
	MsgTypeText     MsgType = "text"
	MsgTypeMarkdown MsgType = "markdown"
)

type At struct {
	IsAtAll   bool     `json:"isAtAll"`
	AtUserIds []string `json:"atUserIds,omitempty"`
	AtMobiles []string `json:"atMobiles,omitempty"`
}

type Markdown struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}

type Text struct {
	Content string `json:"content"`
}

type RobotSendResp struct {
	Errcode int    `json:"errcode"`
	Errmsg  string `json:"errmsg"`
}

// SendWebhookMsg 向钉钉发起通知
// 相关文档 https://open.dingtalk.com/document/orgapp/custom-bot-send-message-type
func SendWebhookMsg(ctx context.Context, req *RobotSendReq, webhookUrl string) (*RobotSendResp, error) {
	body, err := sonic.MarshalString(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookUrl, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")

	res, err := httpc.DoRequest(r)
	if err != nil {
		logx.WithContext(ctx).Errorf("http.Do fail, err:%v, url:%s, req:%s", err, webhookUrl, body)
		return nil, err
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	result := string(raw)

	resp := new(RobotSendResp)
	err = sonic.UnmarshalString(result, resp)
	if err != nil {
		logx.WithContext(ctx).Errorf("sonicUnmarshal fail, err:%v, result:%s", err, result)
		return nil, err
	}
	if resp.Errcode != 0 {
		return resp, fmt.Errorf("dingding errcode:%d errmsg:%s", resp.Errcode, resp.Errmsg)
	}

	logx.WithContext(ctx).Slowf("sendWebhookMsg ok, req:%s, result:%s, webhookUrl:%s", body, result, webhookUrl)
	return resp, nil
}

// DingdingNotify 异步发送文本告警, webhookUrl 为空时只记录日志
func DingdingNotify(ctx context.Context, webhookUrl, msg string) {
	if webhookUrl == "" {
		logx.WithContext(ctx).Errorf("%s%s", alarmPrefix, msg)
		return
	}
	logger := logx.WithContext(ctx)
	go func() {
		defer exception.Recover()
		now := time.Now().Format("2006-01-02 15:04:05")
		req := &RobotSendReq{
			Msgtype: MsgTypeText,
			Text: &Text{
				Content: alarmPrefix + msg + ", now:" + now,
			},
		}
		// 请求已结束, 不沿用其ctx
		if _, err := SendWebhookMsg(context.Background(), req, webhookUrl); err != nil {
			logger.Errorf("dingding notify fail, err:%v", err)
		}
	}()
}

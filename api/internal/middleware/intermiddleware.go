package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

const defaultAllowCidr = "172.30.0.0/16"

var errNotAllow = errors.New("not allow")

type InterMiddleware struct {
	allow   []*net.IPNet
	proxies []*net.IPNet // 可信反向代理, 只信任它们追加的 X-Forwarded-For
}

func NewInterMiddleware(cidrs, trustedProxies []string) *InterMiddleware {
	if len(cidrs) == 0 {
		cidrs = []string{defaultAllowCidr}
	}
	return &InterMiddleware{
		allow:   parseCidrs(cidrs),
		proxies: parseCidrs(trustedProxies),
	}
}

func parseCidrs(cidrs []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			logx.Errorf("InterMiddleware invalid cidr: %s, err: %v", cidr, err)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

func (m *InterMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := m.ClientIp(r)
		if m.isBelong(ip) {
			next(w, r)
			return
		}
		logx.WithContext(r.Context()).Errorf("InterMiddleware err: %v, ip: %s", errNotAllow, ip)
		httpx.ErrorCtx(r.Context(), w, errNotAllow)
	}
}

// ClientIp 请求来源地址
// 对端不是可信代理时直接取对端地址, 否则从右往左取第一个非可信代理的 X-Forwarded-For 地址
func (m *InterMiddleware) ClientIp(r *http.Request) string {
	peer := remoteHost(r)
	if m == nil || !contains(m.proxies, peer) {
		return peer
	}
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	ip := peer
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		ip = hop
		if !contains(m.proxies, hop) {
			break
		}
	}
	return ip
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

//判断网段合法
func (m *InterMiddleware) isBelong(ip string) bool {
	return contains(m.allow, ip)
}

func contains(nets []*net.IPNet, ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, ipNet := range nets {
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

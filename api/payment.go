package main

import (
	"flag"
	"fmt"

	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/config"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/handler"
	"gitee.com/zhuyunkj/wxpay-gateway/api/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/payment.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

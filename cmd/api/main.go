package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"mediexplain/internal/app"
	"mediexplain/internal/config"
)

// @title                       MediExplain API
// @version                     1.0
// @description                 의료 보고서 설명 서비스: 보고서 분석, 기록, 대시보드, 의학 지식 조회
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and JWT token.
func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("main(): failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg); err != nil {
		log.Fatalf("main(): %v", err)
	}
}

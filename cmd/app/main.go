package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"FinScan/internal/di"
	"FinScan/pkg/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	envPath := flag.String("env", ".env", "optional dotenv file")
	checkOnly := flag.Bool("check", false, "validate the configuration and exit")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath, *envPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *checkOnly {
		fmt.Printf("config ok: env=%s port=%d redis=%t kafka=%t\n",
			cfg.Environment, cfg.Server.Port, cfg.Cache.Redis.Enabled, cfg.Kafka.Enabled)
		return
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// blocks until SIGINT/SIGTERM
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/college-data/internal/config"
	"github.com/college-data/internal/web"
)

func main() {
	// Load environment configuration
	config.LoadEnv()

	fmt.Println("=== College Statistics Dashboard API ===")

	var webConfig *web.Config
	var err error

	if len(os.Args) > 1 {
		// Explicit JSON config file
		webConfig, err = web.LoadConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", os.Args[1], err)
		}
	} else {
		// Build configuration from the environment
		webConfig = web.DefaultConfig()
		webConfig.Server.Host = config.GetEnv("WEB_HOST", webConfig.Server.Host)
		webConfig.Server.Port = config.GetEnvInt("WEB_PORT", webConfig.Server.Port)
		webConfig.Database.URL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			config.GetEnv("PGUSER", "postgres"),
			config.GetEnv("PGPASSWORD", "postgres"),
			config.GetEnv("PGHOST", "localhost"),
			config.GetEnv("PGPORT", "5432"),
			config.GetEnv("PGDATABASE", "collegedata"),
			config.GetEnv("PGSSLMODE", "disable"))
		webConfig.Database.MaxConnections = config.GetEnvInt("DB_MAX_CONNECTIONS", webConfig.Database.MaxConnections)
		webConfig.Auth.Enabled = config.GetEnvBool("ENABLE_AUTH", false)
		webConfig.Auth.APIKey = config.GetEnv("API_KEY", "")
		webConfig.Features.ExportEnabled = config.GetEnvBool("ENABLE_EXPORT", true)
	}

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Printf("Server: http://%s:%d\n", webConfig.Server.Host, webConfig.Server.Port)
	fmt.Printf("Export enabled: %v\n", webConfig.Features.ExportEnabled)

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

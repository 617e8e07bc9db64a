//go:build ignore

// Ручная проверка доступа к тестовому API BusSystem.
// Запуск: go run scripts/smoke.go -from 3 -to 6
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/bussystem-service/internal/config"
	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/infrastructure/bussystem"
)

func main() {
	from := flag.Int64("from", 3, "point_id откуда")
	to := flag.Int64("to", 6, "point_id куда")
	date := flag.String("date", time.Now().AddDate(0, 0, 7).Format("2006-01-02"), "дата поездки")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	client := bussystem.NewClient(&cfg.BusSystem, config.CacheConfig{}, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	fmt.Println("ping: ok")

	defaults := domain.Defaults{
		Currency: cfg.BusSystem.Currency,
		Language: cfg.BusSystem.Language,
		Version:  cfg.BusSystem.Version,
	}

	criteria := domain.NewSearchCriteria(defaults).
		Date(*date).
		From(*from).
		To(*to).
		Bus()

	routes, err := client.GetRoutes(ctx, criteria)
	if err != nil {
		log.Fatalf("get_routes: %v", err)
	}

	out, _ := json.MarshalIndent(routes, "", "  ")
	fmt.Printf("get_routes %s -> %s на %s:\n%s\n", criteria.Values().Get("id_from"),
		criteria.Values().Get("id_to"), *date, out)
}

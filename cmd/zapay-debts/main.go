// Command zapay-debts searches a vehicle's outstanding debts from the
// command line. Credentials come from ZAPAY_USERNAME and ZAPAY_PASSWORD;
// the result is printed as JSON on stdout.
//
//	zapay-debts -state SP -plate ABC1D23 -renavam 00194483649
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	zapay "github.com/boddenberg/zapay-go"
	"github.com/boddenberg/zapay-go/internal/config"
	"github.com/boddenberg/zapay-go/internal/infra/observability"
)

func main() {
	state := flag.String("state", "", "federative unit abbreviation, e.g. SP")
	plate := flag.String("plate", "", "license plate, e.g. ABC1D23")
	renavam := flag.String("renavam", "", "11 digit renavam")
	flag.Parse()

	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("base_url", cfg.BaseURL),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("refresh_margin", cfg.RefreshMargin),
	)

	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "zapay-debts")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	username := os.Getenv("ZAPAY_USERNAME")
	password := os.Getenv("ZAPAY_PASSWORD")
	if username == "" || password == "" {
		logger.Fatal("ZAPAY_USERNAME and ZAPAY_PASSWORD must be set")
	}
	if *state == "" || *plate == "" || *renavam == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := zapay.New(ctx, username, password,
		zapay.WithLogger(logger),
		zapay.WithoutAutoRefresh(),
	)
	if err != nil {
		logger.Fatal("authentication failed", zap.Error(err))
	}
	defer client.Close()

	debts, err := client.Debts(ctx, *state, *plate, *renavam)
	if err != nil {
		logger.Fatal("debts search failed", zap.Error(err))
	}

	logger.Info("debts search completed",
		zap.String("protocol", debts.Protocol),
		zap.Int("debts", len(debts.Debts)),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(debts); err != nil {
		logger.Fatal("encoding result", zap.Error(err))
	}
}

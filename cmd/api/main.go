package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/warmindo-pos.git/internal/boltx"
	"github.com/ariefcatur/warmindo-pos.git/internal/cart"
	"github.com/ariefcatur/warmindo-pos.git/internal/config"
	"github.com/ariefcatur/warmindo-pos.git/internal/gemini"
	"github.com/ariefcatur/warmindo-pos.git/internal/httpx"
	"github.com/ariefcatur/warmindo-pos.git/internal/pos"
	"github.com/ariefcatur/warmindo-pos.git/internal/redisx"
	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	_ = godotenv.Load()
	cfg := config.Load()

	// snapshot store
	snap, err := boltx.Open(cfg.DataPath, pos.SnapshotKey)
	if err != nil {
		zap.S().Fatalf("snapshot open: %v", err)
	}
	defer snap.Close()

	// Redis cache (optional)
	rdb := redisx.New(cfg.RedisAddr)
	if rdb != nil {
		defer rdb.Close()
	}

	// app bus
	bus := EventBus.New()
	_ = bus.Subscribe(pos.TopicOrderCommitted, func(t pos.Transaction) {
		zap.S().Infof("order committed: %s total=%s", t.ID, pos.FormatRupiah(t.Total))
	})
	_ = bus.Subscribe(pos.TopicOrderCancelled, func(t pos.Transaction) {
		zap.S().Infof("order cancelled: %s", t.ID)
	})
	_ = bus.Subscribe(pos.TopicStockLow, func(ev pos.StockLowEvent) {
		zap.S().Warnf("stok rendah: %s sisa %d (min %d)", ev.Name, ev.Quantity, ev.MinStock)
	})

	// state & handler
	store := pos.NewStore(snap, bus)
	builder := cart.New(store)
	ai := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !ai.Enabled() {
		zap.S().Warn("GEMINI_API_KEY not set, AI features degraded")
	}

	router := httpx.NewRouter()
	h := &httpx.PosHandler{
		Store: store,
		Cart:  builder,
		AI:    ai,
		Redis: rdb,
	}
	h.Register(router)

	// nightly snapshot backup
	sched := cron.New()
	_, err = sched.AddFunc("@daily", func() {
		date := time.Now().UTC().Format("2006-01-02")
		if err := snap.Backup(date); err != nil {
			zap.S().Errorf("snapshot backup %s: %v", date, err)
		}
	})
	if err != nil {
		zap.S().Errorf("init backup job: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		zap.S().Infof("%s listening at %s", cfg.ServiceName, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

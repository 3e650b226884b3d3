package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EgorLis/osrsbot/internal/bot"
	"github.com/EgorLis/osrsbot/internal/config"
	"github.com/EgorLis/osrsbot/internal/itemdir"
	"github.com/EgorLis/osrsbot/internal/logging"
	"github.com/EgorLis/osrsbot/internal/metrics"
	"github.com/EgorLis/osrsbot/internal/osrsapi"
	"github.com/EgorLis/osrsbot/internal/tgclient"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "osrsbot",
		Short:         "Telegram bot for Old School RuneScape prices, hiscores and wiki links",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err := run(ctx, configPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "osrsbot:", err)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config (optional)")
	return cmd
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
		_ = closeLog()
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	api := osrsapi.NewClient(cfg.APIConf())
	api.OnResponse = m.ObserveUpstream

	// справочник строится до того, как пойдут апдейты
	items := itemdir.Load(ctx, api, log.Named("itemdir"))
	m.SetDirectorySize(items.Len())

	tg, err := tgclient.New(cfg.Token, cfg.PollTimeout, cfg.Debug, log.Named("telegram"))
	if err != nil {
		return fmt.Errorf("telegram auth: %w", err)
	}

	b := bot.New(items, api)
	b.SetLogger(log.Named("bot"))
	b.SetMetrics(m)
	b.SetWikiURL(cfg.WikiURL)
	b.SetHouse(bot.HouseConf{
		Player:      cfg.HousePlayer,
		Name:        cfg.HouseName,
		TargetLevel: cfg.HouseTargetLevel,
		TargetXP:    cfg.HouseTargetXP,
	})
	b.SetTelegramClient(tg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.Run(gctx) })
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.MetricsAddr, metrics.Router(reg), log.Named("metrics"))
		})
	}

	log.Info("bot is running… press Ctrl+C to stop", zap.Int("items", items.Len()))
	err = g.Wait()
	log.Info("bot stopped")
	return err
}

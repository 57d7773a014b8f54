// The notifier posts the daily scheduled-receipt digest to Slack. It is
// meant to run from cron on weekday mornings; weekends are skipped unless
// forced.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BoostersSCM/Input-Management/internal/application/notify"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/postgres"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/slack"
	"github.com/BoostersSCM/Input-Management/pkg/config"
	"github.com/BoostersSCM/Input-Management/pkg/logger"
)

var force bool

var rootCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Slack digest of upcoming scheduled receipts",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Build today's digest and post it to the configured webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), true)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the digest payload as JSON without posting it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), false)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "run even on weekends")
	rootCmd.AddCommand(sendCmd, previewCmd)
}

func run(ctx context.Context, post bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	loc, err := time.LoadLocation(cfg.Slack.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Slack.Timezone, err)
	}
	now := time.Now().In(loc)

	if wd := now.Weekday(); !force && (wd == time.Saturday || wd == time.Sunday) {
		log.Info().Str("weekday", wd.String()).Msg("weekend, skipping digest")
		return nil
	}

	pool, err := postgres.NewPool(ctx, cfg.ERPDB)
	if err != nil {
		return fmt.Errorf("ERP database connection: %w", err)
	}
	defer pool.Close()

	repo := postgres.NewSourceRepository(pool, cfg.Receiving.HistoryWindowDays)
	rows, err := repo.FetchSourceRows(ctx)
	if err != nil {
		return fmt.Errorf("fetch scheduled receipts: %w", err)
	}

	payload := notify.BuildDigest(rows, now)

	if !post {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	if cfg.Slack.WebhookURL == "" {
		return fmt.Errorf("SLACK_WEBHOOK_URL is not configured")
	}
	client := slack.NewWebhookClient(cfg.Slack.WebhookURL)
	if err := client.Post(ctx, payload); err != nil {
		return fmt.Errorf("post digest: %w", err)
	}

	log.Info().Int("rows", len(rows)).Msg("digest posted")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// notify-telegram posts a test run summary to the configured Telegram chat.
// It is meant to be called from CI after the test job finishes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesportal-qa/sales-portal-tests/internal/config"
	"github.com/salesportal-qa/sales-portal-tests/internal/notify"
)

var (
	envFlag       string
	passedFlag    int
	failedFlag    int
	skippedFlag   int
	durationFlag  time.Duration
	reportURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "notify-telegram",
	Short: "Send a Sales Portal test run summary to Telegram",
	Long: `notify-telegram builds a run summary from the given counters and posts
it to the Telegram chat configured via TELEGRAM_BOT_TOKEN and
TELEGRAM_CHAT_ID. With no token configured the command exits successfully
without sending anything, and delivery failures are logged rather than
propagated, so it is safe to keep in every pipeline.`,
	RunE: runNotify,
}

func init() {
	rootCmd.Flags().StringVar(&envFlag, "env", "", "Environment name shown in the summary")
	rootCmd.Flags().IntVar(&passedFlag, "passed", 0, "Number of passed tests")
	rootCmd.Flags().IntVar(&failedFlag, "failed", 0, "Number of failed tests")
	rootCmd.Flags().IntVar(&skippedFlag, "skipped", 0, "Number of skipped tests")
	rootCmd.Flags().DurationVar(&durationFlag, "duration", 0, "Total run duration, e.g. 12m30s")
	rootCmd.Flags().StringVar(&reportURLFlag, "report-url", "", "Link to the published test report")
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	summary := notify.RunSummary{
		Environment: envFlag,
		Passed:      passedFlag,
		Failed:      failedFlag,
		Skipped:     skippedFlag,
		Duration:    durationFlag,
		ReportURL:   reportURLFlag,
		FinishedAt:  time.Now(),
	}

	notifier := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if !notifier.Configured() {
		fmt.Fprintln(cmd.ErrOrStderr(), "telegram credentials not configured, skipping notification")
		return nil
	}

	notifier.LogOutput = cmd.ErrOrStderr()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	notifier.Notify(ctx, summary.Message())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

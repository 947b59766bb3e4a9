package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"PortfolioSentinel/internal/scheduler"
)

var runOnStart bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run periodically on a cron schedule, reporting via Telegram",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		task := func() {
			report, err := app.runOnce()
			if err != nil {
				app.log.Error().Err(err).Msg("scheduled run failed")
				return
			}
			fmt.Println(report)
			if app.notifier.Enabled() {
				if err := app.notifier.SendWithRetry(ctx, report, 3); err != nil {
					app.log.Error().Err(err).Msg("send report")
				}
			}
		}

		sched := scheduler.New(task, app.log)
		if err := sched.Register(app.cfg.Schedule.Cron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if app.notifier.Enabled() {
			go app.notifier.StartPolling(ctx, func(command string) string {
				switch command {
				case "/run":
					sched.RunNow()
					return ""
				case "/help":
					return "Commands:\n• /run — rebalance now\n• /help — this message"
				default:
					return "Unknown command. Try /help"
				}
			})
			app.log.Info().Msg("telegram polling started")
		}

		if runOnStart || os.Getenv("RUN_ON_START") == "true" {
			app.log.Info().Msg("run-on-start enabled, executing rebalance now")
			go sched.RunNow()
		}

		app.log.Info().Str("cron", app.cfg.Schedule.Cron).Msg("scheduler running, press Ctrl+C to stop")
		<-ctx.Done()
		return nil
	},
}

func init() {
	scheduleCmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "execute one rebalance immediately on startup")
	rootCmd.AddCommand(scheduleCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"playconf/cmd/ui/spinner"
	"playconf/pkg/applog"
	"playconf/pkg/readiness"
)

var (
	waitTimeout  time.Duration
	waitInterval time.Duration
)

var waitCmd = &cobra.Command{
	Use:   "wait [PROJECT_PATH]",
	Short: "Wait until the application server answers",
	Long: `Poll the resolved server URL until it answers with a status the test
runner accepts (2xx, 3xx, 400-403) or the timeout elapses.

Useful in CI when the application server is started by a separate step.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWait,
}

func runWait(cmd *cobra.Command, args []string) {
	res := resolveOrExit(args)

	url := res.Settings.ServerURL
	if res.Config.WebServer != nil {
		url = res.Config.WebServer.URL
	}

	timeout := waitTimeout
	if timeout == 0 {
		timeout = res.Settings.ServerTimeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := readiness.Options{Timeout: timeout, Interval: waitInterval}

	if jsonOutput || !isTerminal() {
		applog.Info("waiting for server", zap.String("url", url), zap.Duration("timeout", timeout))
		if err := readiness.Wait(ctx, url, opts); err != nil {
			exitWithError(err)
		}
		fmt.Printf("%s is ready\n", url)
		return
	}

	if err := waitWithSpinner(ctx, url, opts); err != nil {
		exitWithError(err)
	}
	fmt.Printf("%s\n", endingMsgStyle.Render(fmt.Sprintf("✅ %s is ready", url)))
}

// waitWithSpinner runs readiness.Wait behind a spinner. Quitting the
// spinner cancels the wait.
func waitWithSpinner(ctx context.Context, url string, opts readiness.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	message := fmt.Sprintf("Waiting for %s...", url)
	program := tea.NewProgram(spinner.InitialModel(message), tea.WithContext(ctx))

	opts.OnAttempt = func(attempt int, err error) {
		program.Send(spinner.StatusMsg(fmt.Sprintf("%s (attempt %d: %v)", message, attempt, err)))
	}

	result := make(chan error, 1)
	go func() {
		err := readiness.Wait(ctx, url, opts)
		result <- err
		program.Send(spinner.DoneMsg{})
	}()

	final, err := program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	if m, ok := final.(spinner.Model); ok && m.Cancelled() {
		cancel()
		<-result
		return fmt.Errorf("cancelled waiting for %s", url)
	}
	return <-result
}

func init() {
	rootCmd.AddCommand(waitCmd)

	waitCmd.Flags().DurationVar(&waitTimeout, "timeout", 0, "How long to wait (default: the server timeout setting, 60s)")
	waitCmd.Flags().DurationVar(&waitInterval, "interval", 0, "Delay between probes (default 250ms)")
}

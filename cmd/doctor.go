package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"playconf/cmd/ui/summary"
	"playconf/pkg/applog"
	"playconf/pkg/browsers"
	"playconf/pkg/readiness"
)

const (
	doctorProbeTimeout  = 2 * time.Second
	doctorLaunchTimeout = 30 * time.Second
)

var doctorLaunch bool

// doctorReport is the JSON form of the doctor command
type doctorReport struct {
	Browsers        []browsers.Status `json:"browsers"`
	ServerURL       string            `json:"server_url"`
	ServerReachable bool              `json:"server_reachable"`
	ChromiumVersion string            `json:"chromium_version,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [PROJECT_PATH]",
	Short: "Check browser engines and the application server",
	Long: `Check that the browser engine of every configured project is available
and whether the application server is already running.

Chromium is looked up among the usual Chrome and Chromium install locations;
--launch also starts it headless to prove it runs. Firefox and WebKit are
managed by the test runner.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	res := resolveOrExit(args)

	report := doctorReport{
		Browsers:  browsers.Check(res.Config.Projects),
		ServerURL: res.Settings.ServerURL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), doctorProbeTimeout)
	report.ServerReachable = readiness.IsReachable(ctx, report.ServerURL)
	cancel()

	healthy := true
	for _, st := range report.Browsers {
		if !st.OK() {
			healthy = false
		}
		if doctorLaunch && st.State == browsers.StateFound && report.ChromiumVersion == "" {
			version, err := browsers.Smoke(st.Path, doctorLaunchTimeout)
			if err != nil {
				applog.Error("chromium failed to start", zap.String("path", st.Path), zap.Error(err))
				healthy = false
				continue
			}
			report.ChromiumVersion = version
		}
	}

	if jsonOutput || !isTerminal() {
		emitJSON(report)
	} else {
		fmt.Println(summary.RenderDoctor(report.Browsers, report.ServerURL, report.ServerReachable))
		if report.ChromiumVersion != "" {
			fmt.Printf("%s\n", tipMsgStyle.Render("Launched "+report.ChromiumVersion))
		}
	}

	if !healthy {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorLaunch, "launch", false, "Launch Chromium headless to verify it starts")
}

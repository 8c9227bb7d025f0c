package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"playconf/cmd/ui/summary"
	"playconf/pkg/applog"
)

const Version = "1.0.0"

var (
	jsonOutput     bool
	forceCI        bool
	verbose        bool
	noUserConfig   bool
	flagPort       int
	flagTestDir    string
	flagCommand    string
	flagProjects   string
	flagServerEnvs []string

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const Logo = `
██████╗ ██╗      █████╗ ██╗   ██╗ ██████╗ ██████╗ ███╗   ██╗███████╗
██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝██╔════╝██╔═══██╗████╗  ██║██╔════╝
██████╔╝██║     ███████║ ╚████╔╝ ██║     ██║   ██║██╔██╗ ██║█████╗
██╔═══╝ ██║     ██╔══██║  ╚██╔╝  ██║     ██║   ██║██║╚██╗██║██╔══╝
██║     ███████╗██║  ██║   ██║   ╚██████╗╚██████╔╝██║ ╚████║██║
╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "playconf [PROJECT_PATH]",
	Short: "Resolve the end-to-end browser test configuration of a project",
	Long: Logo + `
Playconf resolves the configuration of an end-to-end browser test run.

It scans the test directory for spec files and, when any exist, attaches a
local web server block so the runner boots the application before testing.
CI runs (the CI environment variable is set) forbid focused tests, retry
failures and run on a single worker.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.SetVerbose(verbose)
	},
	Run: runRootCommand,
}

func Execute() {
	defer applog.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	res := resolveOrExit(args)

	if jsonOutput || res.Environment.CI || !isTerminal() {
		emitJSON(res.Config)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))
	fmt.Println(summary.Render(res))
	fmt.Printf("%s\n", tipMsgStyle.Render("Tip: Use --json to print the configuration for the test runner"))
}

func isTerminal() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("playconf version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables styled output)")
	rootCmd.PersistentFlags().BoolVar(&forceCI, "ci", false, "Resolve as a CI run regardless of the CI variable")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&noUserConfig, "no-user-config", false, "Ignore per-user overrides in ~/.playconf")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "Application server port (default 3000)")
	rootCmd.PersistentFlags().StringVar(&flagTestDir, "test-dir", "", "Directory holding the spec files (default ./e2e)")
	rootCmd.PersistentFlags().StringVar(&flagCommand, "server-command", "", "Command that starts the application server")
	rootCmd.PersistentFlags().StringVar(&flagProjects, "projects", "", "Comma separated browsers to run, e.g. chromium,firefox")
	rootCmd.PersistentFlags().StringArrayVar(&flagServerEnvs, "env", nil, "Server environment variable KEY=VALUE (repeatable)")
}

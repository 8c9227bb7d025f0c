// Package summary renders resolved configurations for a terminal.
package summary

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"playconf/pkg/browsers"
	"playconf/pkg/detector"
	"playconf/pkg/resolver"
)

var (
	titleStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#01FAC6")).Padding(1, 2)
)

func field(b *strings.Builder, label, value string) {
	b.WriteString(focusedStyle.Render(label + ": "))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func check(ok bool) string {
	if ok {
		return successStyle.Render("✓")
	}
	return failStyle.Render("✗")
}

// Render formats a resolved configuration
func Render(res *resolver.Result) string {
	cfg := res.Config
	var s strings.Builder

	s.WriteString(titleStyle.Render("Run Configuration"))
	s.WriteString("\n\n")

	var content strings.Builder
	field(&content, "Project", res.Root)
	field(&content, "Test dir", cfg.TestDir)

	content.WriteString(focusedStyle.Render("Specs found: "))
	content.WriteString(check(res.HasTests))
	content.WriteString("\n")

	mode := "local"
	if res.Environment.CI {
		mode = "CI"
	}
	field(&content, "Mode", mode)
	field(&content, "Retries", fmt.Sprintf("%d", cfg.Retries))
	if cfg.Workers != nil {
		field(&content, "Workers", fmt.Sprintf("%d", *cfg.Workers))
	} else {
		field(&content, "Workers", "runner default")
	}
	field(&content, "Reporter", cfg.Reporter)
	field(&content, "Base URL", cfg.Use.BaseURL)
	field(&content, "Trace", cfg.Use.Trace)

	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Projects:"))
	content.WriteString("\n")
	for _, p := range cfg.Projects {
		content.WriteString(fmt.Sprintf("  %s %s\n", successStyle.Render("•"), descriptionStyle.Render(p.Name+" ("+p.Use.BrowserName+")")))
	}

	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Web server:"))
	content.WriteString("\n")
	if ws := cfg.WebServer; ws != nil {
		content.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render("command"), descriptionStyle.Render(ws.Command)))
		content.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render("source "), descriptionStyle.Render(res.CommandSource)))
		content.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render("url    "), descriptionStyle.Render(ws.URL)))
		content.WriteString(fmt.Sprintf("  %s %t\n", mutedStyle.Render("reuse  "), ws.ReuseExistingServer))
		if len(ws.Env) > 0 {
			keys := make([]string, 0, len(ws.Env))
			for k := range ws.Env {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			content.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render("env    "), descriptionStyle.Render(strings.Join(keys, ", "))))
		}
	} else {
		content.WriteString(mutedStyle.Render("  not attached, no specs found"))
		content.WriteString("\n")
	}

	s.WriteString(boxStyle.Render(strings.TrimRight(content.String(), "\n")))
	s.WriteString("\n")
	return s.String()
}

// RenderDetection formats the spec files found and the inferred server
func RenderDetection(root string, files []string, det detector.Detection) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Detection Results"))
	s.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(focusedStyle.Render(fmt.Sprintf("Spec files (%d):", len(files))))
	content.WriteString("\n")
	if len(files) == 0 {
		content.WriteString(mutedStyle.Render("  none"))
		content.WriteString("\n")
	}
	for _, f := range files {
		if rel, err := filepath.Rel(root, f); err == nil {
			f = rel
		}
		content.WriteString(fmt.Sprintf("  %s %s\n", successStyle.Render("✓"), descriptionStyle.Render(f)))
	}

	content.WriteString("\n")
	field(&content, "Framework", det.Framework)
	field(&content, "Language", det.Language)
	field(&content, "Confidence", fmt.Sprintf("%.0f%%", det.Confidence*100))
	if det.PackageManager != "" {
		field(&content, "Package manager", det.PackageManager)
	}
	field(&content, "Server command", det.Command)
	if det.DetectedPort != 0 {
		field(&content, "Port in project files", fmt.Sprintf("%d", det.DetectedPort))
	}

	if len(det.Signals) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Detection signals:"))
		content.WriteString("\n")
		for _, signal := range det.Signals {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(signal))
			content.WriteString("\n")
		}
	}

	s.WriteString(boxStyle.Render(strings.TrimRight(content.String(), "\n")))
	s.WriteString("\n")
	return s.String()
}

// RenderDoctor formats browser availability and server reachability
func RenderDoctor(statuses []browsers.Status, serverURL string, reachable bool) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Environment Check"))
	s.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Browsers:"))
	content.WriteString("\n")
	for _, st := range statuses {
		detail := string(st.State)
		if st.Path != "" {
			detail += " at " + st.Path
		}
		content.WriteString(fmt.Sprintf("  %s %s %s\n", check(st.OK()), valueStyle.Render(st.Project), mutedStyle.Render("("+st.Browser+", "+detail+")")))
	}

	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Server: "))
	content.WriteString(fmt.Sprintf("%s %s", check(reachable), descriptionStyle.Render(serverURL)))
	if reachable {
		content.WriteString(mutedStyle.Render(" (running, would be reused locally)"))
	} else {
		content.WriteString(mutedStyle.Render(" (not running, the runner will start it)"))
	}

	s.WriteString(boxStyle.Render(content.String()))
	s.WriteString("\n")
	return s.String()
}

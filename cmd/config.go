package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"playconf/pkg/config"
	"playconf/pkg/util"
)

var (
	configStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	configLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	configValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	configMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage per-user configuration overrides",
	Long: `Manage per-user overrides stored in ~/.playconf/config.json.

Overrides are kept per project directory and sit between the repository's
.playconf.ini and command line flags.

Keys: ` + strings.Join(config.SettingKeys(), ", "),
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects with overrides",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrExit()

		if jsonOutput {
			output := make(map[string]map[string]string, len(cfg.Projects))
			for path, s := range cfg.Projects {
				output[path] = s.Values()
			}
			emitJSON(output)
			return
		}

		fmt.Println(configStyle.Render("Configured Projects:"))
		paths := cfg.ProjectPaths()
		if len(paths) == 0 {
			fmt.Println(configMutedStyle.Render("  No overrides configured yet"))
			fmt.Println()
			return
		}

		for _, path := range paths {
			fmt.Printf("\n  %s\n", configLabelStyle.Render(path))
			printValues(cfg.Projects[path].Values())
		}
		fmt.Println()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value> [PROJECT_PATH]",
	Short: "Set an override for a project",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		root := validatedRootOrExit(args[2:])
		cfg := loadConfigOrExit()

		s, _ := cfg.GetProject(root)
		if err := s.Set(args[0], args[1]); err != nil {
			exitWithError(err)
		}
		saveProjectOrExit(cfg, root, s)

		fmt.Printf("%s\n", endingMsgStyle.Render(fmt.Sprintf("Set %s for %s", args[0], root)))
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key> [PROJECT_PATH]",
	Short: "Remove an override from a project",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		root := validatedRootOrExit(args[1:])
		cfg := loadConfigOrExit()

		s, exists := cfg.GetProject(root)
		if err := s.Unset(args[0]); err != nil {
			exitWithError(err)
		}
		if !exists {
			fmt.Println(configMutedStyle.Render("No overrides configured for " + root))
			return
		}
		saveProjectOrExit(cfg, root, s)

		fmt.Printf("%s\n", endingMsgStyle.Render(fmt.Sprintf("Unset %s for %s", args[0], root)))
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset [PROJECT_PATH]",
	Short: "Remove every override of a project",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := validatedRootOrExit(args)
		cfg := loadConfigOrExit()

		if err := cfg.DeleteProject(root); err != nil {
			exitWithError(fmt.Errorf("removing overrides: %w", err))
		}

		fmt.Printf("%s\n", endingMsgStyle.Render("Removed overrides for "+root))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [PROJECT_PATH]",
	Short: "Show the effective settings of a project and where overrides come from",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res := resolveOrExit(args)

		if jsonOutput {
			emitJSON(res.Settings.Values())
			return
		}

		fmt.Println(configStyle.Render("Effective Settings:"))
		fmt.Printf("  %s\n", configLabelStyle.Render(res.Root))
		printValues(res.Settings.Values())
		fmt.Printf("\n  %s %s\n", configMutedStyle.Render("user config:"), configValueStyle.Render(config.GetConfigPath()))
		fmt.Println()
	},
}

func printValues(values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("    %-15s %s\n", k+":", configValueStyle.Render(values[k]))
	}
}

func validatedRootOrExit(args []string) string {
	root, err := util.ValidateProjectPath(projectPathArg(args))
	if err != nil {
		exitWithError(err)
	}
	return root
}

func saveProjectOrExit(cfg *config.Config, root string, s config.Settings) {
	if err := cfg.SetProject(root, s); err != nil {
		exitWithError(fmt.Errorf("updating project: %w", err))
	}
	if err := cfg.SaveConfig(); err != nil {
		exitWithError(fmt.Errorf("saving configuration: %w", err))
	}
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configShowCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"playconf/cmd/ui/summary"
	"playconf/pkg/detector"
	"playconf/pkg/discovery"
	"playconf/pkg/resolver"
)

var listSpecs bool

// detectReport is the JSON form of the detect command
type detectReport struct {
	Root      string             `json:"root"`
	TestDir   string             `json:"test_dir"`
	HasTests  bool               `json:"has_tests"`
	SpecFiles []string           `json:"spec_files"`
	Server    detector.Detection `json:"server"`
}

var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Report spec files and the inferred application server",
	Long: `Scan the test directory for spec files and infer the command that starts
the application server from the project's framework signals.

With --list only the spec file paths are printed, one per line.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	res := resolveOrExit(args)

	scanner := discovery.NewScanner(os.DirFS(res.TestDir), res.Settings.SpecSuffix)
	found, err := scanner.FindTestFiles(".")
	if err != nil {
		exitWithError(fmt.Errorf("listing spec files: %w", err))
	}

	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, filepath.Join(res.TestDir, filepath.FromSlash(f)))
	}

	if listSpecs {
		for _, f := range files {
			if rel, err := filepath.Rel(res.Root, f); err == nil {
				f = rel
			}
			fmt.Println(f)
		}
		return
	}

	det := detector.DetectServer(res.Root, res.Settings.Port)

	if jsonOutput || !isTerminal() {
		emitJSON(detectReport{
			Root:      res.Root,
			TestDir:   res.TestDir,
			HasTests:  res.HasTests,
			SpecFiles: files,
			Server:    det,
		})
		return
	}

	fmt.Println(summary.RenderDetection(res.Root, files, det))
	if res.CommandSource == resolver.SourceConfigured && res.Settings.ServerCommand != det.Command {
		fmt.Printf("%s\n", tipMsgStyle.Render("Configured server command overrides detection: "+res.Settings.ServerCommand))
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().BoolVar(&listSpecs, "list", false, "Print spec file paths only")
}

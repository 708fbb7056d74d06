package skelgen

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	DryRun      bool
	LayoutPath  string
	NoAnimation bool
	Completion  string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "skelgen",
	Short: "Materialize the project directory layout in the current directory.",
	Long: `Materialize the insider-terminator project layout in the current directory.

Creates every declared directory, writes a placeholder for each missing
source file, and regenerates package.json, tsconfig.json, README.md and
docs/ARCHITECTURE.md. Existing source files are never touched; the root
artifacts are always rewritten.

Example: skelgen
         skelgen --dry-run
         tree myproject | skelgen --layout -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		app, err := NewApp(&Config{
			DryRun:     cfg.DryRun,
			LayoutPath: cfg.LayoutPath,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ui := NewTUI(app, cfg.NoAnimation)
		return ui.Run()
	},
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report what would be created without writing")
	rootCmd.Flags().StringVarP(&cfg.LayoutPath, "layout", "l", "", "Scaffold a tree-style layout file instead of the built-in one ('-' for stdin/clipboard)")
	rootCmd.Flags().BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable spinner")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}

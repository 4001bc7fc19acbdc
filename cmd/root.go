package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptpack/pkg/clipboard"
	"promptpack/pkg/config"
	"promptpack/pkg/scan"
)

// RootCmd is the base command. Running it with no arguments scans the
// current directory and writes the prompt artifact.
var RootCmd = &cobra.Command{
	Use:   "promptpack",
	Short: "promptpack packs a project tree and its file contents into one prompt artifact",
	Long: `promptpack scans a project directory and writes a single text file combining
an ASCII rendering of the directory tree with the contents of every
non-excluded file, ready to paste into a large-language-model prompt.`,
	Args: cobra.NoArgs,
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	RootCmd.RunE = func(command *cobra.Command, _ []string) error {
		return runScan(command, logger)
	}
	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.Flags()
	flags.StringP("dir", "d", ".", "Directory to scan")
	flags.StringP("output", "o", scan.DefaultOutputFile, "Output file for the rendered artifact")
	flags.String("config", "", "Path to a configuration file (default: .promptpack.yaml in the scan root)")
	flags.Bool("use-gitignore", false, "Also exclude paths matched by the root .gitignore")
	flags.Bool("tokens", false, "Print a token estimate for the artifact")
	flags.String("model", "gpt-4o", "Model used to pick the tokenizer encoding")
	flags.BoolP("copy", "c", false, "Copy the artifact to the system clipboard")
}

// runScan resolves configuration in three layers: compiled-in defaults, the
// optional configuration file, then any flags explicitly set on the command
// line.
func runScan(command *cobra.Command, logger *zap.Logger) error {
	flags := command.Flags()

	directory, err := flags.GetString("dir")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", directory, err)
	}

	args := scan.Arguments{
		Directory:  absDirectory,
		Output:     scan.DefaultOutputFile,
		TokenModel: "gpt-4o",
	}

	configPath, _ := flags.GetString("config")
	configuration, err := config.Load(absDirectory, configPath)
	if err != nil {
		return err
	}
	configuration.Apply(&args)

	if flags.Changed("output") {
		args.Output, _ = flags.GetString("output")
	}
	if flags.Changed("use-gitignore") {
		args.UseGitignore, _ = flags.GetBool("use-gitignore")
	}
	if flags.Changed("tokens") {
		args.CountTokens, _ = flags.GetBool("tokens")
	}
	if flags.Changed("model") {
		args.TokenModel, _ = flags.GetString("model")
	}
	if flags.Changed("copy") {
		args.CopyToClip, _ = flags.GetBool("copy")
	}

	return scan.Run(args, clipboard.NewService(), logger)
}

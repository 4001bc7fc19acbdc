// File: pkg/scan/execute.go
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"

	"promptpack/pkg/clipboard"
)

// Run performs one full scan: it builds the exclusion policy, renders the
// directory tree, collects file contents, and writes the combined artifact.
// Per-file failures are logged and skipped; only a failure to write the
// final artifact is fatal.
func Run(args Arguments, copier clipboard.Copier, logger *zap.Logger) error {
	startTime := time.Now()

	rootDir, err := filepath.Abs(args.Directory)
	if err != nil {
		return fmt.Errorf("failed to resolve scan root %s: %w", args.Directory, err)
	}
	logger.Info("Starting scan", zap.String("directory", rootDir))

	policy := buildPolicy(args, rootDir, logger)

	fmt.Printf("Scanning %s and generating tree structure...\n", rootDir)
	treeLines := BuildTree(rootDir, policy)

	files, skipped := CollectFiles(rootDir, policy)
	for _, skip := range skipped {
		logger.Warn("Skipping file",
			zap.String("path", skip.Path),
			zap.String("reason", string(skip.Reason)),
			zap.Error(skip.Err))
	}

	artifact := RenderArtifact(filepath.Base(rootDir), treeLines, files)

	fmt.Printf("Writing output to %s...\n", args.Output)
	if err := os.WriteFile(args.Output, []byte(artifact), 0o644); err != nil {
		logger.Error("Failed to write output file", zap.String("file", args.Output), zap.Error(err))
		return fmt.Errorf("failed to write output file %s: %w", args.Output, err)
	}
	fmt.Printf("Output successfully written to %s.\n", args.Output)

	if args.CountTokens {
		count, encoding, countErr := CountTokens(artifact, args.TokenModel)
		if countErr != nil {
			logger.Warn("Failed to estimate tokens", zap.Error(countErr))
		} else {
			fmt.Printf("Estimated tokens (%s): %d\n", encoding, count)
		}
	}

	if args.CopyToClip {
		if copyErr := copier.Copy(artifact); copyErr != nil {
			logger.Warn("Failed to copy artifact to clipboard", zap.Error(copyErr))
		} else {
			fmt.Println("Artifact copied to clipboard.")
		}
	}

	logger.Info("Scan completed",
		zap.Int("treeLines", len(treeLines)),
		zap.Int("files", len(files)),
		zap.Int("skipped", len(skipped)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// buildPolicy assembles the exclusion policy for a run: the configured sets
// (or the compiled-in defaults), the output filename, and optionally the
// root .gitignore. The output filename is always excluded so a scan never
// ingests its own artifact.
func buildPolicy(args Arguments, rootDir string, logger *zap.Logger) Policy {
	dirs := args.ExcludedDirs
	if dirs == nil {
		dirs = DefaultExcludedDirs
	}
	files := args.ExcludedFiles
	if files == nil {
		files = DefaultExcludedFiles
	}
	extensions := args.ExcludedExtensions
	if extensions == nil {
		extensions = DefaultExcludedExtensions
	}
	files = append(append([]string{}, files...), filepath.Base(args.Output))
	policy := NewPolicy(dirs, files, extensions)

	if args.UseGitignore {
		gitignorePath := filepath.Join(rootDir, ".gitignore")
		matcher, compileErr := gitignore.CompileIgnoreFile(gitignorePath)
		if compileErr != nil {
			if !os.IsNotExist(compileErr) {
				logger.Warn("Failed to load .gitignore", zap.String("file", gitignorePath), zap.Error(compileErr))
			}
		} else {
			logger.Debug("Loaded .gitignore", zap.String("file", gitignorePath))
			policy = policy.WithGitignore(matcher)
		}
	}

	return policy
}

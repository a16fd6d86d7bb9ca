package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/salacious/internal/adapter/driven/github"
	openaiadapter "github.com/ericfisherdev/salacious/internal/adapter/driven/openai"
	"github.com/ericfisherdev/salacious/internal/application"
	"github.com/ericfisherdev/salacious/internal/config"
)

const version = "1.0.0"

func main() {
	setupLogging(slog.LevelInfo)

	root := &cobra.Command{
		Use:   "salacious",
		Short: "CI bot that reviews pull request diffs with a completion model",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.AddCommand(newVersionCmd())

	// Signal-based context (SIGINT, SIGTERM) so an in-flight API call is
	// abandoned cleanly when the CI runner cancels the job.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the salacious version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("salacious version %s\n", version)
		},
	}
}

func run(ctx context.Context) error {
	// 1. Load configuration (fail fast on missing required env vars, before
	// touching either API).
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotPullRequest) {
		slog.Warn("not running on a pull request, nothing to review")
		return nil
	}
	if err != nil {
		return err
	}

	// 2. Reconfigure logging at the requested level.
	setupLogging(cfg.LogLevel)
	slog.Info("starting salacious",
		"version", version,
		"repo", cfg.Repo,
		"pr_number", cfg.PRNumber,
		"model", cfg.Model,
	)

	// 3. Wire adapters.
	githubClient := githubadapter.NewClient(cfg.GitHubToken)
	completer := openaiadapter.NewClient(cfg.OpenAIKey, cfg.Model, cfg.OpenAIBaseURL)

	// 4. Run the review. Per-file failures and a rejected submission are
	// handled inside; an error here means the pull request itself was
	// unreachable.
	service := application.NewReviewService(githubClient, completer, cfg.MaxPatchBytes)
	if _, err := service.Run(ctx, cfg.Repo, cfg.PRNumber); err != nil {
		return err
	}

	return nil
}

// setupLogging installs a JSON handler as the default logger so CI log
// collectors can ingest the output without a parsing step.
func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

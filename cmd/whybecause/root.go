package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/NeoVand/WhyBecause/internal/logging"
	"github.com/NeoVand/WhyBecause/internal/workspace"
	"github.com/NeoVand/WhyBecause/pkg/adapters/file"
	"github.com/NeoVand/WhyBecause/pkg/adapters/memory"
	"github.com/NeoVand/WhyBecause/pkg/adapters/redis"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "whybecause",
	Short: "WhyBecause is a flow engine for Why-Because analysis workspaces",
	Long: `WhyBecause runs directed flows of analysis states, optionally invoking
LLM-backed agents at each state, against a document workspace.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing workspace YAML documents (empty seeds a demo workspace)")
	rootCmd.PersistentFlags().String("store", "memory", "Document store backend: memory, file or redis")
	rootCmd.PersistentFlags().String("file-path", "", "Base path for the file store")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address for the redis store")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// loggerFromFlags builds the application logger.
func loggerFromFlags(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return logging.New(l)
}

// storeFromFlags builds the configured document store.
func storeFromFlags(cmd *cobra.Command) (ports.DocumentStore, error) {
	backendName, _ := cmd.Flags().GetString("store")

	switch backendName {
	case "memory", "":
		return memory.NewStore(), nil
	case "file":
		path, _ := cmd.Flags().GetString("file-path")
		return file.New(path), nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		return redis.New(addr, "", 0), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backendName)
	}
}

// populateStore loads the workspace directory into the store, or seeds the
// demo workspace when no directory is given.
func populateStore(ctx context.Context, cmd *cobra.Command, store ports.DocumentStore, logger *slog.Logger) error {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		logger.Info("no workspace directory given, seeding demo workspace")
		return workspace.Seed(ctx, store)
	}

	n, err := workspace.Load(ctx, dir, store)
	if err != nil {
		return err
	}
	logger.Info("workspace loaded", "dir", dir, "documents", n)
	return nil
}

package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonicjoy/aws-bucket-downloader/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aws-bucket-downloader",
	Short: "Bulk downloader for S3 bucket folders",
	Long: `aws-bucket-downloader fetches a fixed set of folders (key prefixes)
from an S3 bucket into a local directory tree and reports per-folder and
per-file success and failure counts.
Configuration is loaded from .env file or environment variables`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Override bucket name from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getBucketName(cmd *cobra.Command) string {
	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket != "" {
		return bucket
	}
	return cfg.BucketName
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if isVerbose(cmd) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

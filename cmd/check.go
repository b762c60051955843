package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sonicjoy/aws-bucket-downloader/internal/s3client"
	"github.com/sonicjoy/aws-bucket-downloader/pkg/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify bucket access and show bucket information",
	Long: `Verify that the configured credentials can reach the S3 bucket and
print detailed information about it. Useful before kicking off a large
download batch.`,
	Example: `  # Check the configured bucket
  aws-bucket-downloader check

  # Check a specific bucket
  aws-bucket-downloader check --bucket my-other-bucket

  # Verbose output
  aws-bucket-downloader check --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

func runCheck(cmd *cobra.Command) error {
	setupLogging(cmd)

	runCfg := *cfg
	runCfg.BucketName = getBucketName(cmd)

	client, err := s3client.New(&runCfg)
	if err != nil {
		utils.PrintError(err, "check")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Checking access to bucket: %s\n", runCfg.BucketName)
	}

	if err := client.CheckAccess(ctx); err != nil {
		utils.PrintError(err, "check")
		return err
	}

	info, err := client.GetBucketInfo(ctx)
	if err != nil {
		utils.PrintError(err, "check")
		return err
	}

	if err := utils.PrintJSON(info); err != nil {
		utils.PrintError(err, "check")
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Bucket info retrieved successfully\n")
	}
	return nil
}

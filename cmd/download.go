package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonicjoy/aws-bucket-downloader/internal/downloader"
	"github.com/sonicjoy/aws-bucket-downloader/internal/s3client"
	"github.com/sonicjoy/aws-bucket-downloader/pkg/utils"
)

// defaultFolders is the standing set of offer-generator runs this tool was
// built to pull down when no --folders list is given.
var defaultFolders = []string{
	"77580", "77667", "77828", "77579", "77666", "77829",
	"77669", "77748", "77826", "77708", "77789", "77863",
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download folders from the S3 bucket to a local directory",
	Long: `Download a list of folders (key prefixes) from the S3 bucket.

For each folder the command lists all objects under the folder prefix,
skips folder markers, and downloads every file into the same relative
location under the local path, creating directories as needed and
overwriting existing files.

One file's failure does not stop the rest of its folder, and one folder's
failure does not stop the rest of the batch. A summary with per-folder and
per-file counts is printed at the end; the exit code is 0 only when every
folder downloaded without failures.`,
	Example: `  # Download the default folder set
  aws-bucket-downloader download

  # Download specific folders
  aws-bucket-downloader download --folders 77580,77667

  # Download to a specific destination
  aws-bucket-downloader download --local-path /tmp/downloads

  # Download from a different bucket and region
  aws-bucket-downloader download --bucket my-other-bucket --region eu-west-1

  # Verbose download with per-file log lines
  aws-bucket-downloader download --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd)
	},
}

func runDownload(cmd *cobra.Command) error {
	folders, _ := cmd.Flags().GetStringSlice("folders")
	localPath, _ := cmd.Flags().GetString("local-path")
	profile, _ := cmd.Flags().GetString("profile")
	region, _ := cmd.Flags().GetString("region")

	setupLogging(cmd)

	runCfg := *cfg
	runCfg.BucketName = getBucketName(cmd)
	if localPath == "" {
		localPath = runCfg.LocalPath
	}
	if profile != "" {
		runCfg.Profile = profile
	}
	if region != "" {
		runCfg.Region = region
	}

	client, err := s3client.New(&runCfg)
	if err != nil {
		utils.PrintError(err, "download")
		return err
	}

	ctx := context.Background()

	if err := client.CheckAccess(ctx); err != nil {
		utils.PrintError(err, "download")
		return err
	}
	slog.Info("connected to S3 bucket", "bucket", runCfg.BucketName)

	if err := os.MkdirAll(localPath, 0o755); err != nil {
		err = fmt.Errorf("failed to create download directory %s: %w", localPath, err)
		utils.PrintError(err, "download")
		return err
	}

	d := downloader.New(client, runCfg.BucketName, localPath, slog.Default())
	result := d.DownloadFolders(ctx, folders)

	if isVerbose(cmd) {
		if err := utils.PrintJSON(result); err != nil {
			utils.PrintError(err, "download")
		}
	}

	downloader.WriteSummary(os.Stdout, result, localPath)

	if downloader.ExitCode(result) != 0 {
		return fmt.Errorf("%d of %d folders failed, check the log for details",
			result.FailedFolders, result.TotalFolders)
	}

	slog.Info("all downloads completed successfully")
	return nil
}

func init() {
	downloadCmd.Flags().StringSliceP("folders", "f", defaultFolders, "Folder names to download")
	downloadCmd.Flags().StringP("local-path", "l", "", "Local download path (default from config)")
	downloadCmd.Flags().StringP("profile", "p", "", "AWS profile to use (default from config)")
	downloadCmd.Flags().StringP("region", "r", "", "AWS region (default from config)")

	downloadCmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)
}

package downloader

import (
	"fmt"
	"io"
	"strings"

	"github.com/sonicjoy/aws-bucket-downloader/internal/models"
	"github.com/sonicjoy/aws-bucket-downloader/pkg/utils"
)

// WriteSummary renders the batch result as the final human-readable block.
// Folders with failed files are itemized in input order; folders that only
// carry a folder-level error attempted no files and are not itemized.
func WriteSummary(w io.Writer, result *models.BatchResult, localRoot string) {
	line := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "DOWNLOAD SUMMARY")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total folders:      %d\n", result.TotalFolders)
	fmt.Fprintf(w, "Successful folders: %d\n", result.SuccessfulFolders)
	fmt.Fprintf(w, "Failed folders:     %d\n", result.FailedFolders)
	fmt.Fprintf(w, "Total files:        %d\n", result.TotalFiles)
	fmt.Fprintf(w, "Successful files:   %d\n", result.SuccessfulFiles)
	fmt.Fprintf(w, "Failed files:       %d\n", result.FailedFiles)
	fmt.Fprintf(w, "Downloaded:         %s\n", utils.FormatBytes(result.DownloadedBytes))
	fmt.Fprintf(w, "Duration:           %s\n", result.Duration)
	fmt.Fprintf(w, "Download location:  %s\n", localRoot)

	if result.FailedFolders > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed folders:")
		for _, folder := range result.FolderResults {
			if folder.FailedFiles > 0 {
				fmt.Fprintf(w, "  - %s: %d failed files\n", folder.FolderName, folder.FailedFiles)
			}
		}
	}

	fmt.Fprintln(w, line)
}

// ExitCode is 0 only when every folder succeeded.
func ExitCode(result *models.BatchResult) int {
	if result.FailedFolders > 0 {
		return 1
	}
	return 0
}

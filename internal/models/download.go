package models

import "time"

// RemoteObject is one entry returned by listing a folder prefix.
// A key ending in "/" is a folder marker, not a downloadable file.
type RemoteObject struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// IsFolderMarker reports whether the object is a zero-content placeholder
// some tools create to represent an empty folder.
func (o RemoteObject) IsFolderMarker() bool {
	return len(o.Key) > 0 && o.Key[len(o.Key)-1] == '/'
}

type FolderResult struct {
	FolderName      string `json:"folder_name"`
	SuccessfulFiles int    `json:"successful_files"`
	FailedFiles     int    `json:"failed_files"`
	DownloadedBytes int64  `json:"downloaded_bytes,omitempty"`
	ListingFailed   bool   `json:"listing_failed,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Failed reports whether the folder counts as failed in the batch totals.
// A non-empty Error or any failed file marks the folder failed, even if
// some files downloaded fine. A failed listing does not: that folder is
// indistinguishable from an empty one in the counts.
func (r FolderResult) Failed() bool {
	return r.FailedFiles > 0 || r.Error != ""
}

type BatchResult struct {
	BucketName        string         `json:"bucket_name"`
	TotalFolders      int            `json:"total_folders"`
	SuccessfulFolders int            `json:"successful_folders"`
	FailedFolders     int            `json:"failed_folders"`
	TotalFiles        int            `json:"total_files"`
	SuccessfulFiles   int            `json:"successful_files"`
	FailedFiles       int            `json:"failed_files"`
	DownloadedBytes   int64          `json:"downloaded_bytes"`
	StartTime         time.Time      `json:"start_time"`
	EndTime           time.Time      `json:"end_time"`
	Duration          string         `json:"duration"`
	FolderResults     []FolderResult `json:"folder_results"`
}

// AddFolder records one folder's outcome and rolls it into the totals.
// Folders are appended in processing order, which is the input order.
func (b *BatchResult) AddFolder(result FolderResult) {
	b.FolderResults = append(b.FolderResults, result)
	b.TotalFiles += result.SuccessfulFiles + result.FailedFiles
	b.SuccessfulFiles += result.SuccessfulFiles
	b.FailedFiles += result.FailedFiles
	b.DownloadedBytes += result.DownloadedBytes
	if result.Failed() {
		b.FailedFolders++
	} else {
		b.SuccessfulFolders++
	}
}

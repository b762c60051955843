package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sonicjoy/aws-bucket-downloader/internal/models"
)

// ObjectStore is the surface of the S3 client the downloader drives.
type ObjectStore interface {
	ListFolderObjects(ctx context.Context, prefix string) ([]models.RemoteObject, error)
	DownloadObject(ctx context.Context, key, destPath string) error
}

type Downloader struct {
	store     ObjectStore
	bucket    string
	localRoot string
	logger    *slog.Logger
}

func New(store ObjectStore, bucket, localRoot string, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		store:     store,
		bucket:    bucket,
		localRoot: localRoot,
		logger:    logger,
	}
}

// DownloadFolders processes each named folder in order and aggregates the
// per-folder outcomes into a single batch result. No folder's failure stops
// the folders after it.
func (d *Downloader) DownloadFolders(ctx context.Context, folderNames []string) *models.BatchResult {
	result := &models.BatchResult{
		BucketName:   d.bucket,
		TotalFolders: len(folderNames),
		StartTime:    time.Now(),
	}

	d.logger.Info("starting batch download",
		"bucket", d.bucket,
		"folders", len(folderNames),
		"local_path", d.localRoot)

	for _, folderName := range folderNames {
		result.AddFolder(d.runFolder(ctx, folderName))
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime).String()

	return result
}

// runFolder is the outermost isolation boundary: a panic while processing
// one folder is recorded as that folder's error and the batch moves on.
func (d *Downloader) runFolder(ctx context.Context, folderName string) (fr models.FolderResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("unexpected error processing folder",
				"folder", folderName,
				"error", r)
			fr = models.FolderResult{
				FolderName: folderName,
				Error:      fmt.Sprint(r),
			}
		}
	}()

	return d.DownloadFolder(ctx, folderName)
}

// DownloadFolder lists one folder and downloads its files sequentially,
// in listing order. A single file's failure is counted and the loop
// continues with the next file.
func (d *Downloader) DownloadFolder(ctx context.Context, folderName string) models.FolderResult {
	prefix := folderName + "/"
	result := models.FolderResult{FolderName: folderName}

	d.logger.Info("starting folder download", "folder", folderName)

	objects, err := d.store.ListFolderObjects(ctx, prefix)
	if err != nil {
		// A folder whose listing failed is reported like an empty one.
		d.logger.Warn("failed to list folder, treating as empty",
			"folder", folderName,
			"error", err)
		result.ListingFailed = true
		return result
	}

	var files []models.RemoteObject
	for _, obj := range objects {
		if !obj.IsFolderMarker() {
			files = append(files, obj)
		}
	}

	if len(files) == 0 {
		d.logger.Warn("no files found in folder", "folder", folderName)
		return result
	}

	d.logger.Info("downloading files", "folder", folderName, "count", len(files))

	for _, obj := range files {
		if err := d.downloadFile(ctx, folderName, obj.Key); err != nil {
			d.logger.Error("failed to download file", "key", obj.Key, "error", err)
			result.FailedFiles++
			continue
		}
		result.SuccessfulFiles++
		result.DownloadedBytes += obj.Size
		d.logger.Debug("downloaded file", "key", obj.Key, "size", obj.Size)
	}

	d.logger.Info("completed folder",
		"folder", folderName,
		"successful", result.SuccessfulFiles,
		"failed", result.FailedFiles)

	return result
}

func (d *Downloader) downloadFile(ctx context.Context, folderName, key string) error {
	destPath := d.localPath(folderName, key)

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	return d.store.DownloadObject(ctx, key, destPath)
}

// localPath maps a remote key to its destination under the local root:
// root/<folder>/<key minus the folder prefix>. Keys are trusted to sit
// under the requested prefix; traversal segments are not neutralized.
func (d *Downloader) localPath(folderName, key string) string {
	relative := strings.TrimPrefix(key, folderName+"/")
	return filepath.Join(d.localRoot, folderName, filepath.FromSlash(relative))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFolderMarker(t *testing.T) {
	assert.True(t, RemoteObject{Key: "77580/"}.IsFolderMarker())
	assert.True(t, RemoteObject{Key: "77580/sub/"}.IsFolderMarker())
	assert.False(t, RemoteObject{Key: "77580/report.csv"}.IsFolderMarker())
	assert.False(t, RemoteObject{Key: ""}.IsFolderMarker())
}

func TestFolderResultFailed(t *testing.T) {
	assert.False(t, FolderResult{SuccessfulFiles: 3}.Failed())
	assert.False(t, FolderResult{}.Failed())
	assert.False(t, FolderResult{ListingFailed: true}.Failed())
	assert.True(t, FolderResult{SuccessfulFiles: 3, FailedFiles: 1}.Failed())
	assert.True(t, FolderResult{Error: "something broke"}.Failed())
}

func TestBatchResultAddFolder(t *testing.T) {
	var batch BatchResult
	batch.TotalFolders = 3

	batch.AddFolder(FolderResult{FolderName: "a", SuccessfulFiles: 2, DownloadedBytes: 64})
	batch.AddFolder(FolderResult{FolderName: "b", SuccessfulFiles: 1, FailedFiles: 1, DownloadedBytes: 32})
	batch.AddFolder(FolderResult{FolderName: "c", Error: "boom"})

	assert.Equal(t, 1, batch.SuccessfulFolders)
	assert.Equal(t, 2, batch.FailedFolders)
	assert.Equal(t, 4, batch.TotalFiles)
	assert.Equal(t, 3, batch.SuccessfulFiles)
	assert.Equal(t, 1, batch.FailedFiles)
	assert.Equal(t, int64(96), batch.DownloadedBytes)
	assert.Equal(t, batch.TotalFiles, batch.SuccessfulFiles+batch.FailedFiles)
	assert.Equal(t, batch.TotalFolders, batch.SuccessfulFolders+batch.FailedFolders)

	names := make([]string, 0, len(batch.FolderResults))
	for _, folder := range batch.FolderResults {
		names = append(names, folder.FolderName)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

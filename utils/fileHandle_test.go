package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideoUploadExtensions(t *testing.T) {
	valid := []string{"lecture.mp4", "lecture.MOV", "clip.avi", "clip.mkv"}
	for _, name := range valid {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		assert.NoError(t, ValidateVideoUpload(file), name)
	}

	invalid := []string{"lecture.exe", "notes.pdf", "clip.mp3", "noextension"}
	for _, name := range invalid {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		assert.Error(t, ValidateVideoUpload(file), name)
	}
}

func TestValidateVideoUploadSizeLimit(t *testing.T) {
	atLimit := &multipart.FileHeader{Filename: "big.mp4", Size: MaxVideoSize}
	assert.NoError(t, ValidateVideoUpload(atLimit))

	overLimit := &multipart.FileHeader{Filename: "big.mp4", Size: MaxVideoSize + 1}
	assert.Error(t, ValidateVideoUpload(overLimit))
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "", GetFileURL(""))
	assert.Equal(t, "/uploads/abc.mp4", GetFileURL("uploads/abc.mp4"))
}

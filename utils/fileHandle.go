package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxVideoSize is the upload ceiling for lesson videos.
const MaxVideoSize = 500 * 1024 * 1024 // 500 MB

var allowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv"}

// ValidateVideoUpload enforces the extension allow-list and size
// ceiling before anything touches disk.
func ValidateVideoUpload(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	allowed := false
	for _, valid := range allowedVideoExtensions {
		if ext == valid {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("invalid file extension %q, allowed: %s", ext, strings.Join(allowedVideoExtensions, ", "))
	}

	if file.Size > MaxVideoSize {
		return fmt.Errorf("file exceeds the 500 MB size limit")
	}

	return nil
}

// SaveUploadedFile stores an upload under destDir with a random name,
// returning the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a stored path to its public URL.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filePath)
}

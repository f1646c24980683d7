package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
)

const uploadRoot = "uploads"

// SavePhoto runs an uploaded image through the WebP pipeline and persists it
// under the local upload root. Returns the public path served by the app.
func SavePhoto(folder string, fileHeader *multipart.FileHeader) (string, error) {
	data, err := ConvertToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	key := GenerateUniqueFilename(folder, fileHeader.Filename)
	fullPath := filepath.Join(uploadRoot, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return "/" + uploadRoot + "/" + key, nil
}

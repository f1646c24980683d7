package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxPhotoBytes = 5 * 1024 * 1024
	maxPhotoWidth = 1024
	webpQuality   = 80
)

// ConvertToWebP decodes an uploaded player/Aadhaar photo, caps its width and
// re-encodes it as WebP. Returns the encoded bytes ready for storage.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxPhotoBytes {
		return nil, fmt.Errorf("image exceeds %dMB limit", maxPhotoBytes/1024/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode uploaded image: %w", err)
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// GenerateUniqueFilename builds a collision-free storage key for a photo.
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	safe := unsafeFilenameChars.ReplaceAllString(originalFilename, "_")
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), safe)
}

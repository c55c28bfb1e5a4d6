package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Check-out proof photo uploads
	UploadCheckOutPhoto(ctx context.Context, guardID string, date time.Time, file io.Reader, filename string) (string, error)

	// Incident evidence photo uploads
	UploadIncidentPhoto(ctx context.Context, guardID string, file io.Reader, filename string) (string, error)

	// Avatar uploads
	UploadAvatar(ctx context.Context, guardID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func validImageExt(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return ext, true
	}
	return ext, false
}

// UploadCheckOutPhoto uploads the check-out proof photo, compressed to a
// 50KB-150KB target so mobile uploads stay small.
func (s *fileServiceImpl) UploadCheckOutPhoto(ctx context.Context, guardID string, date time.Time, file io.Reader, filename string) (string, error) {
	if _, ok := validImageExt(filename); !ok {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// Path: attendance/{date}/{guardID}-checkout-{timestamp}.jpg
	// Always JPEG after compression.
	dateStr := date.Format("2006-01-02")
	newFilename := fmt.Sprintf("%s-checkout-%d.jpg", guardID, time.Now().Unix())
	path := filepath.Join("attendance", dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload check-out photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadIncidentPhoto uploads incident evidence, compressed like the
// check-out proof.
func (s *fileServiceImpl) UploadIncidentPhoto(ctx context.Context, guardID string, file io.Reader, filename string) (string, error) {
	if _, ok := validImageExt(filename); !ok {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	newFilename := fmt.Sprintf("%s-%d.jpg", uuid.New().String(), time.Now().Unix())
	path := filepath.Join("incidents", guardID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload incident photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadAvatar uploads a guard avatar without compression.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, guardID string, file io.Reader, filename string) (string, error) {
	ext, ok := validImageExt(filename)
	if !ok {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", guardID, uuid.New().String(), ext)
	path := filepath.Join("avatars", guardID, newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// compressImage re-encodes an image as JPEG within the [minSize, maxSize]
// byte range, dropping quality first and resizing as a last resort.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}
		if len(compressed) > maxSize {
			quality -= 5
			continue
		}
		// Too small but quality already low, accept it.
		if len(compressed) < minSize && quality <= 60 {
			return compressed, nil
		}
		break
	}

	if len(compressed) > maxSize {
		bounds := img.Bounds()
		targetSize := 100 * 1024
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(bounds.Dx()) * ratio)
		newHeight := int(float64(bounds.Dy()) * ratio)
		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}
		compressed = buf.Bytes()
	}

	return compressed, nil
}

func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

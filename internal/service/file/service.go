package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/oijdod/hrms-backend-go/internal/pkg/storage"
)

// maxAvatarDimension bounds the longest edge of an uploaded profile picture.
const maxAvatarDimension = 512

// ErrFileNotFound is returned when a requested object does not exist.
var ErrFileNotFound = errors.New("file not found")

type FileService interface {
	// UploadAvatar stores a profile picture, resized and re-encoded as JPEG
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadResume stores a resume document
	UploadResume(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadLeaveAttachment stores a leave request supporting document
	UploadLeaveAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadPayslip stores a rendered payslip PDF
	UploadPayslip(ctx context.Context, employeeID string, year int, month time.Month, content []byte) (string, error)

	// Generic operations
	Download(ctx context.Context, path string) (io.ReadCloser, error)
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

// UploadAvatar uploads an employee profile picture
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	resized, err := resizeImage(buffer, maxAvatarDimension)
	if err != nil {
		return "", fmt.Errorf("failed to resize image: %w", err)
	}

	// Always JPEG after resizing
	newFilename := fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String())
	path := filepath.Join("avatars", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(resized), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedPath, nil
}

// UploadResume uploads an employee resume document
func (s *fileServiceImpl) UploadResume(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
		return "", fmt.Errorf("invalid file type: only pdf, doc, docx allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("resumes", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

// UploadLeaveAttachment uploads a leave request attachment
func (s *fileServiceImpl) UploadLeaveAttachment(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().Unix(), ext)
	path := filepath.Join("leave", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload leave attachment: %w", err)
	}

	return uploadedPath, nil
}

// UploadPayslip uploads a rendered payslip PDF
func (s *fileServiceImpl) UploadPayslip(ctx context.Context, employeeID string, year int, month time.Month, content []byte) (string, error) {
	newFilename := fmt.Sprintf("%d-%02d-%s.pdf", year, int(month), uuid.New().String())
	path := filepath.Join("payslips", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(content), path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to upload payslip: %w", err)
	}

	return uploadedPath, nil
}

// Download opens a stored object for reading
func (s *fileServiceImpl) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !exists {
		return nil, ErrFileNotFound
	}

	return s.storage.Download(ctx, path)
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// resizeImage scales the image down so its longest edge fits maxDim and
// re-encodes it as JPEG. Images already within bounds are only re-encoded.
func resizeImage(buffer []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxDim || height > maxDim {
		ratio := float64(maxDim) / float64(width)
		if height > width {
			ratio = float64(maxDim) / float64(height)
		}
		newWidth := int(float64(width) * ratio)
		newHeight := int(float64(height) * ratio)

		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

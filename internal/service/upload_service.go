package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"packaging-catalog-be/internal/pkg/logger"
)

// IUploadService stores multipart files under the uploads root and hands
// back the public path they are served from.
type IUploadService interface {
	SaveFile(file *multipart.FileHeader, subdir string) (string, error)
	DeleteFile(publicPath string)
	ResolvePath(publicPath string) string
}

type uploadService struct {
	baseDir string
	logger  logger.ILogger
}

func NewUploadService(baseDir string, logger logger.ILogger) IUploadService {
	return &uploadService{
		baseDir: baseDir,
		logger:  logger,
	}
}

func (s *uploadService) SaveFile(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Timestamp prefix keeps repeated uploads of the same filename apart.
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return "/uploads/" + subdir + "/" + filename, nil
}

// DeleteFile is tolerant of already-missing files: a dangling DB record
// must never block the delete flow.
func (s *uploadService) DeleteFile(publicPath string) {
	diskPath := s.ResolvePath(publicPath)
	if diskPath == "" {
		return
	}
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("upload", "failed to delete file", map[string]interface{}{
			"path":  publicPath,
			"error": err.Error(),
		})
	}
}

// ResolvePath maps a public /uploads/... path back onto the disk location.
// Anything outside the uploads prefix resolves to "".
func (s *uploadService) ResolvePath(publicPath string) string {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok {
		return ""
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.Join(s.baseDir, rel)
}

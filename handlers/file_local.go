package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const uploadDir = "./uploads"

// archiveImportFileLocal stores an uploaded file under ./uploads with a
// timestamp prefix and returns its serving path.
func archiveImportFileLocal(_ context.Context, file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), filepath.Base(filename))
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

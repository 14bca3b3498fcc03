package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
)

// archiveImportFile stores the raw upload so a disputed import can be
// replayed. Cloud Storage in production, local disk otherwise. Selection
// follows the deployment environment: USE_GCS forces it, and Cloud Run
// sets K_SERVICE.
func archiveImportFile(ctx context.Context, file io.Reader, filename string) (string, error) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""
	if useGCS {
		return archiveImportFileGCS(ctx, file, filename)
	}
	return archiveImportFileLocal(ctx, file, filename)
}

func archiveImportFileGCS(ctx context.Context, file io.Reader, filename string) (string, error) {
	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		return "", fmt.Errorf("GCS_BUCKET not set")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	object := fmt.Sprintf("imports/%s/%s-%s",
		time.Now().Format("2006/01/02"),
		time.Now().Format("150405"),
		filepath.Base(filename))

	writer := client.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object), nil
}

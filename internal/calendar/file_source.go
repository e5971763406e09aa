package calendar

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// FileSource reads the feed from a local CSV file
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Fetch reads the whole file
func (fs *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open holiday file: %w", ErrNetwork, err)
	}

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("bytes", len(data)))

	return data, nil
}

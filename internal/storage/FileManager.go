package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/providers"
	"wadboard/internal/structures"

	json "github.com/goccy/go-json"
)

// FileManager reads and writes the whole dashboard document as one JSON file.
type FileManager struct {
	path    string
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewFileManager(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) *FileManager {
	return &FileManager{
		path:    conf.Persistence.FilePath,
		logger:  logger,
		metrics: metrics,
	}
}

func (f *FileManager) Save(doc *models.Document) error {
	start := time.Now()
	defer func() { f.metrics.ObservePersistenceDuration(time.Since(start)) }()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

// Load returns an empty document when the file does not exist yet. A file that
// exists but cannot be decoded is reported so the caller can decide to start empty.
func (f *FileManager) Load() (*models.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeStore, "No data file at %s, starting empty", f.path)
			return models.NewDocument(), nil
		}
		return nil, err
	}

	var doc models.Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	doc.Normalize()

	return &doc, nil
}

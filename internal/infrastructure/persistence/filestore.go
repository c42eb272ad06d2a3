package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"lak_auction/internal/domain"
	"lak_auction/internal/domain/entity"
	"lak_auction/internal/infrastructure/monitoring"
	"lak_auction/pkg/contextx"
	"lak_auction/pkg/errcodes"
	"lak_auction/pkg/logx"
	"lak_auction/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// FileStore keeps the whole item set in one JSON document on disk. There is
// no cross-request cache and no locking: callers read the file, mutate, and
// rewrite it wholesale.
type FileStore struct {
	path    string
	metrics *monitoring.Metrics
}

func NewFileStore(path string, metrics *monitoring.Metrics) *FileStore {
	return &FileStore{
		path:    path,
		metrics: metrics,
	}
}

// Load reads the current item set. A missing file or a document that does
// not parse recovers to the empty set; only filesystem failures surface.
func (s *FileStore) Load(ctx context.Context) ([]entity.Item, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.metrics.StoreRecovered()
		logger(ctx).Info("store file missing, starting empty", logx.FieldStorePath, s.path)

		return []entity.Item{}, nil
	}
	if err != nil {
		return nil, storageErr(err, "os.ReadFile")
	}

	var doc documentSchema
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.metrics.StoreRecovered()
		logger(ctx).Warn(
			"store file corrupt, recovering to empty set",
			logx.FieldStorePath, s.path,
			logx.FieldError, err.Error(),
		)

		return []entity.Item{}, nil
	}

	return lox.Map(doc.Items, itemSchema.toDomain), nil
}

// Save rewrites the full document. The write goes to a temp file in the
// same directory first and is renamed over the target, so readers never see
// a half-written document.
func (s *FileStore) Save(_ context.Context, items []entity.Item) error {
	doc := documentSchema{Items: make([]itemSchema, len(items))}
	for i, item := range items {
		doc.Items[i] = fromItem(item)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storageErr(err, "os.MkdirAll")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return storageErr(err, "os.CreateTemp")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return storageErr(err, "tmp.Write")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return storageErr(err, "tmp.Close")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return storageErr(err, "os.Rename")
	}

	return nil
}

// storageErr marks a filesystem failure so callers can tell it apart from
// domain conditions; it still reads as a plain wrapped error in logs.
func storageErr(err error, op string) error {
	return domain.WrapError(err, errcodes.StorageUnavailable, op)
}

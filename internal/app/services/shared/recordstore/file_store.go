package recordstore

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FileStore keeps a whole collection as one JSON array on disk. Every call
// reads the file and every mutation rewrites it. The mutex only serialises
// callers inside this process.
type FileStore[T models.Record] struct {
	collection string
	path       string
	mu         sync.Mutex
	Log        *zap.Logger
}

func NewFileStore[T models.Record](logger *zap.Logger, dataDir, collection string) contracts.RecordStore[T] {
	return &FileStore[T]{
		collection: collection,
		path:       filepath.Join(dataDir, collection+".json"),
		Log:        logger,
	}
}

func (s *FileStore[T]) Collection() string {
	return s.collection
}

func (s *FileStore[T]) List(ctx context.Context, userID string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	owned := make([]T, 0, len(records))
	for _, record := range records {
		if record.GetUserID() == userID {
			owned = append(owned, record)
		}
	}
	return owned, nil
}

func (s *FileStore[T]) ListAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore[T]) Create(ctx context.Context, userID string, record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.read()
	if err != nil {
		return zero, err
	}

	if record.GetID() == "" {
		record.SetID(utils.GenerateRecordID())
	}
	if indexOf(records, userID, record.GetID()) >= 0 {
		return zero, exceptions.ErrRecordAlreadyExists(nil, record.GetID(), s.collection)
	}
	record.SetUserID(userID)
	records = append(records, record)

	err = s.write(records)
	if err != nil {
		return zero, err
	}
	return record, nil
}

func (s *FileStore[T]) Update(ctx context.Context, userID string, record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.read()
	if err != nil {
		return zero, err
	}

	index := indexOf(records, userID, record.GetID())
	if index < 0 {
		return zero, exceptions.ErrRecordNotFound(nil, record.GetID(), s.collection)
	}
	record.SetUserID(userID)
	records[index] = record

	err = s.write(records)
	if err != nil {
		return zero, err
	}
	return record, nil
}

func (s *FileStore[T]) Delete(ctx context.Context, userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return false, err
	}

	index := indexOf(records, userID, id)
	if index < 0 {
		return false, nil
	}
	records = append(records[:index], records[index+1:]...)

	err = s.write(records)
	if err != nil {
		return false, err
	}
	return true, nil
}

// read treats a missing or empty file as an empty collection.
func (s *FileStore[T]) read() ([]T, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		s.Log.Error("FileStore.read error reading collection file",
			zap.String(constvars.LoggingCollectionKey, s.collection),
			zap.Error(err),
		)
		return nil, exceptions.ErrFileStoreRead(err, s.path)
	}
	if len(content) == 0 {
		return []T{}, nil
	}

	var decoded []T
	err = json.Unmarshal(content, &decoded)
	if err != nil {
		s.Log.Error("FileStore.read error decoding collection file",
			zap.String(constvars.LoggingCollectionKey, s.collection),
			zap.Error(err),
		)
		return nil, exceptions.ErrFileStoreDecode(err, s.path)
	}

	records := make([]T, 0, len(decoded))
	for _, record := range decoded {
		if !models.IsNilRecord(record) {
			records = append(records, record)
		}
	}
	return records, nil
}

// write replaces the collection file through a temp file and rename so a
// crash mid-write leaves the previous content intact.
func (s *FileStore[T]) write(records []T) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return exceptions.ErrFileStoreEncode(err, s.collection)
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0o755)
	if err != nil {
		return exceptions.ErrFileStoreWrite(err, s.path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), s.collection+"-*.tmp")
	if err != nil {
		return exceptions.ErrFileStoreWrite(err, s.path)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		s.Log.Error("FileStore.write error writing collection file",
			zap.String(constvars.LoggingCollectionKey, s.collection),
			zap.Error(err),
		)
		return exceptions.ErrFileStoreWrite(err, s.path)
	}
	return nil
}

func indexOf[T models.Record](records []T, userID, id string) int {
	for i, record := range records {
		if record.GetID() == id && record.GetUserID() == userID {
			return i
		}
	}
	return -1
}

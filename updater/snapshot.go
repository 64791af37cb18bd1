package updater

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gosimple/slug"
	"github.com/klauspost/compress/zstd"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/utils"
)

var (
	encoderPool sync.Pool
	decoderPool sync.Pool
)

func init() {
	encoderPool = sync.Pool{
		New: func() interface{} {
			encoder, err := zstd.NewWriter(nil)
			if err != nil {
				logger.Default.Debugf("Error creating zstd encoder: %v", err)
				return nil
			}
			return encoder
		},
	}

	decoderPool = sync.Pool{
		New: func() interface{} {
			decoder, err := zstd.NewReader(nil)
			if err != nil {
				logger.Default.Debugf("Error creating zstd decoder: %v", err)
				return nil
			}
			return decoder
		},
	}
}

// snapshotStore keeps the last fetched text of each source compressed on
// disk, so checksum comparison survives restarts of the watch loop.
type snapshotStore struct {
	dir string
}

func newSnapshotStore(dir string) *snapshotStore {
	return &snapshotStore{dir: dir}
}

func (s *snapshotStore) path(label string) string {
	return filepath.Join(s.dir, slug.Make(label)+".m3u.zst")
}

// Checksum reports the checksum of the stored snapshot for a source, false
// when no snapshot exists or it cannot be read.
func (s *snapshotStore) Checksum(label string) (string, bool) {
	text, err := s.load(label)
	if err != nil {
		return "", false
	}
	return utils.CalculateChecksum(text), true
}

func (s *snapshotStore) load(label string) (string, error) {
	raw, err := os.ReadFile(s.path(label))
	if err != nil {
		return "", err
	}

	decoder := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(decoder)
	if err := decoder.Reset(bytes.NewReader(raw)); err != nil {
		return "", err
	}

	text, err := io.ReadAll(decoder)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// Save compresses and stores a source's text, replacing any previous
// snapshot.
func (s *snapshotStore) Save(label, text string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	encoder := encoderPool.Get().(*zstd.Encoder)
	defer encoderPool.Put(encoder)

	var compressed bytes.Buffer
	encoder.Reset(&compressed)
	if _, err := encoder.Write([]byte(text)); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	return os.WriteFile(s.path(label), compressed.Bytes(), 0644)
}

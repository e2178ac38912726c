package bundle

import (
	"context"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Putter stores objects. storage.S3Client implements it.
type Putter interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PublishResult summarises an upload.
type PublishResult struct {
	Uploaded int
	Skipped  int
	Keys     []string
}

// DefaultConcurrency bounds parallel uploads.
const DefaultConcurrency = 4

// Publish uploads every file of b under prefix. Each file is also stored
// once under prefix/cid/<etag>; that copy is skipped when it already exists.
func Publish(ctx context.Context, store Putter, b *Bundle, prefix string, logger *zap.Logger) (*PublishResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix = strings.Trim(prefix, "/")

	files := b.Files()
	result := &PublishResult{}
	for _, f := range files {
		result.Keys = append(result.Keys, objectKey(prefix, f.Path))
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, DefaultConcurrency)
	var firstErr error
	var errOnce sync.Once
	var uploaded, skipped int64

	for _, f := range files {
		wg.Add(1)
		go func(f *File) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errOnce.Do(func() { firstErr = ctx.Err() })
				return
			default:
			}

			if err := store.Put(ctx, objectKey(prefix, f.Path), f.ContentType, f.Data); err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			atomic.AddInt64(&uploaded, 1)

			blobKey := objectKey(prefix, path.Join("cid", f.ETag))
			exists, err := store.Exists(ctx, blobKey)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			if exists {
				atomic.AddInt64(&skipped, 1)
				return
			}
			if err := store.Put(ctx, blobKey, f.ContentType, f.Data); err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			atomic.AddInt64(&uploaded, 1)
		}(f)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	result.Uploaded = int(uploaded)
	result.Skipped = int(skipped)
	logger.Info("bundle published",
		zap.String("prefix", prefix),
		zap.Int("uploaded", result.Uploaded),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func objectKey(prefix, p string) string {
	if prefix == "" {
		return p
	}
	return prefix + "/" + p
}

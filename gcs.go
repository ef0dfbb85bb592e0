package heredity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/carbocation/pfx"
)

// openGoogleStorage opens a gs://bucket/object path for reading. The caller
// owns the returned ReadCloser; closing it also closes the underlying
// client.
func openGoogleStorage(path string) (io.ReadCloser, error) {
	trimmed := strings.TrimPrefix(path, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, pfx.Err(fmt.Errorf("%q is not a valid gs://bucket/object path", path))
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	reader, err := client.Bucket(parts[0]).Object(parts[1]).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, pfx.Err(err)
	}

	return &googleStorageReader{Reader: reader, client: client}, nil
}

type googleStorageReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *googleStorageReader) Close() error {
	err := r.Reader.Close()
	if closeErr := r.client.Close(); err == nil {
		err = closeErr
	}
	return err
}

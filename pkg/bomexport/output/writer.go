package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ukaji3/bomexport-go/internal/blob"
)

// ContentType is the MIME type of the import files.
const ContentType = "text/csv; charset=utf-8"

// ErrOutput indicates an import file could not be written.
var ErrOutput = errors.New("output not writable")

// OutputError reports a failed write of one import file.
type OutputError struct {
	Key string
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Key, e.Err)
}

func (e *OutputError) Unwrap() []error {
	return []error{ErrOutput, e.Err}
}

// Writer stores encoded tables in a blob store.
type Writer struct {
	store    blob.Store
	metadata map[string]string
}

// NewWriter returns a writer that attaches metadata (e.g. the run ID) to
// every stored file.
func NewWriter(store blob.Store, metadata map[string]string) *Writer {
	return &Writer{store: store, metadata: metadata}
}

// Store returns the underlying blob store.
func (w *Writer) Store() blob.Store {
	return w.store
}

// Put stores body under key, replacing any previous file.
func (w *Writer) Put(ctx context.Context, key string, body []byte) (blob.Info, error) {
	info, err := w.store.Put(ctx, key, bytes.NewReader(body), blob.PutOptions{
		ContentType: ContentType,
		Metadata:    w.metadata,
	})
	if err != nil {
		return blob.Info{}, &OutputError{Key: key, Err: err}
	}
	return info, nil
}

// Save encodes records and stores them as the table's file.
func (t Table[T]) Save(ctx context.Context, w *Writer, records []T) (blob.Info, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf, records); err != nil {
		return blob.Info{}, &OutputError{Key: t.FileName(), Err: err}
	}
	return w.Put(ctx, t.FileName(), buf.Bytes())
}

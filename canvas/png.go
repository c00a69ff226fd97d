package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/picarlo/picarlo/internal"
	"github.com/picarlo/picarlo/worker"
)

// EncodePNG encodes img as PNG into w through a pooled buffer.
func EncodePNG(w io.Writer, img image.Image) error {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// WritePNG writes img to the file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WritePNGAsync encodes img on the worker pool and reports the result to done, which may be nil. img must
// not be modified until done is called.
func WritePNGAsync(path string, img image.Image, done func(error)) {
	worker.Submit(func() {
		err := WritePNG(path, img)
		if done != nil {
			done(err)
		}
	})
}

package compress

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// flushCloser is the common shape of every streaming compressor this
// package installs on the write side: Write plus an explicit Flush
// (push buffered bytes without ending the stream) and Close (finalize,
// emitting the format's trailer).
type flushCloser interface {
	io.Writer
	Flush() error
	Close() error
}

// newEncoder wraps w with alg's streaming compressor. None returns a
// no-op flushCloser around w directly.
func newEncoder(w io.Writer, alg Algorithm) (flushCloser, error) {
	switch alg {
	case None:
		return identityWriter{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Deflate:
		fw, err := flate.NewWriter(w, flate.DefaultCompression)
		if err != nil {
			return nil, fmt.Errorf("compress: new deflate writer: %w", err)
		}
		return fw, nil
	case Zlib:
		return zlib.NewWriter(w), nil
	case Brotli:
		return &brotliWriter{Writer: brotli.NewWriter(w)}, nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("compress: new zstd writer: %w", err)
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %v", alg)
	}
}

// newDecoder wraps r with alg's streaming decompressor. None returns r
// unchanged.
func newDecoder(r io.Reader, alg Algorithm) (io.Reader, error) {
	switch alg {
	case None:
		return r, nil
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: decode: %w", err)
		}
		return gr, nil
	case Deflate:
		return flate.NewReader(r), nil
	case Zlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: decode: %w", err)
		}
		return zr, nil
	case Brotli:
		return brotli.NewReader(r), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: decode: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %v", alg)
	}
}

// identityWriter is the None-algorithm encoder: a pass-through with no
// framing, whose Flush/Close are no-ops.
type identityWriter struct {
	io.Writer
}

func (identityWriter) Flush() error { return nil }
func (identityWriter) Close() error { return nil }

// brotliWriter adapts brotli.Writer (Write/Flush/Close, no error-typed
// Flush signature quirks) to the flushCloser shape.
type brotliWriter struct {
	*brotli.Writer
}

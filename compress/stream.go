package compress

import (
	"bufio"
	"fmt"
	"io"
)

// Stream wraps a byte transport and applies a compression algorithm to
// both directions, switchable at runtime. Grounded on
// original_source/compress/src/stream.rs's AsyncCompress/AsyncDecompress
// duplex, translated into a blocking io.Reader/io.Writer pair per
// spec.md §5.
//
// A broken Stream (a prior finalize failed) sticks in that state: every
// subsequent Read/Write/Flush/SwitchAlgorithm returns the same error
// without touching the transport again.
type Stream struct {
	rw  io.ReadWriter
	alg Algorithm

	enc flushCloser
	dec io.Reader

	broken error
}

// New creates a Stream over rw using the given algorithm.
func New(rw io.ReadWriter, alg Algorithm) *Stream {
	s := &Stream{rw: rw}
	s.install(alg)
	return s
}

// install sets s.alg and builds a fresh encoder/decoder pair over s.rw,
// panicking-free: any construction error is surfaced lazily, the first
// time Read or Write is attempted, via s.broken.
func (s *Stream) install(alg Algorithm) {
	s.alg = alg
	enc, err := newEncoder(s.rw, alg)
	if err != nil {
		s.broken = err
		return
	}
	s.enc = enc
	// Decoders for streaming formats read lazily from s.rw; constructing
	// them eagerly for formats like gzip would block on a header read
	// before any bytes exist. Buffer instead: build on first Read.
	s.dec = nil
}

// Algorithm returns the currently installed algorithm.
func (s *Stream) Algorithm() Algorithm { return s.alg }

// GetRef returns the underlying transport without disturbing it.
func (s *Stream) GetRef() io.ReadWriter { return s.rw }

// GetMut is GetRef under the name spec.md §5 also lists for it.
func (s *Stream) GetMut() io.ReadWriter { return s.rw }

// IntoInner finalizes the current encoder (flushing its trailer) and
// returns the bare transport, consuming the Stream.
func (s *Stream) IntoInner() (io.ReadWriter, error) {
	if s.broken != nil {
		return nil, s.broken
	}
	if err := s.finalize(); err != nil {
		return nil, err
	}
	return s.rw, nil
}

func (s *Stream) finalize() error {
	if s.enc == nil {
		return nil
	}
	if err := s.enc.Close(); err != nil {
		s.broken = fmt.Errorf("compress: finalize %s: %w", s.alg, err)
		return s.broken
	}
	return nil
}

// SwitchAlgorithm flushes and finalizes the current encoder (emitting
// its trailer onto the transport), then installs a fresh codec pair for
// alg. A finalize failure leaves the Stream permanently broken, per
// spec.md §4.1. Switching to the already-installed algorithm is a no-op.
func (s *Stream) SwitchAlgorithm(alg Algorithm) error {
	if s.broken != nil {
		return s.broken
	}
	if alg == s.alg {
		return nil
	}
	if err := s.finalize(); err != nil {
		return err
	}
	s.install(alg)
	return s.broken
}

// Write compresses p through the current encoder.
func (s *Stream) Write(p []byte) (int, error) {
	if s.broken != nil {
		return 0, s.broken
	}
	n, err := s.enc.Write(p)
	if err != nil {
		s.broken = fmt.Errorf("compress: write %s: %w", s.alg, err)
		return n, s.broken
	}
	return n, nil
}

// Flush pushes any buffered compressed bytes to the transport without
// ending the stream (no trailer is written).
func (s *Stream) Flush() error {
	if s.broken != nil {
		return s.broken
	}
	if err := s.enc.Flush(); err != nil {
		s.broken = fmt.Errorf("compress: flush %s: %w", s.alg, err)
		return s.broken
	}
	return nil
}

// Read decompresses from the transport through the current decoder,
// building the decoder lazily on first use so that constructing it
// doesn't block on header bytes that haven't arrived yet.
func (s *Stream) Read(p []byte) (int, error) {
	if s.broken != nil {
		return 0, s.broken
	}
	if s.dec == nil {
		dec, err := newDecoder(bufio.NewReader(s.rw), s.alg)
		if err != nil {
			s.broken = fmt.Errorf("compress: open decoder %s: %w", s.alg, err)
			return 0, s.broken
		}
		s.dec = dec
	}
	n, err := s.dec.Read(p)
	if err != nil && err != io.EOF {
		s.broken = fmt.Errorf("compress: read %s: %w", s.alg, err)
		return n, s.broken
	}
	return n, err
}

// ReadHalf is the read side of a Split Stream: it owns its own algorithm
// and decoder, independent of the write side.
type ReadHalf struct {
	r   io.Reader
	alg Algorithm
	dec io.Reader

	broken error
}

// WriteHalf is the write side of a Split Stream: it owns its own
// algorithm and encoder, independent of the read side.
type WriteHalf struct {
	w   io.Writer
	alg Algorithm
	enc flushCloser

	broken error
}

// Split divides rw into independently switchable read and write halves,
// both starting at alg. Grounded on SPEC_FULL.md §5's "each half owns its own
// Algorithm and can SwitchAlgorithm independently."
func Split(rw io.ReadWriter, alg Algorithm) (*ReadHalf, *WriteHalf) {
	rh := &ReadHalf{r: rw, alg: alg}
	wh := &WriteHalf{w: rw, alg: alg}
	enc, err := newEncoder(rw, alg)
	if err != nil {
		wh.broken = err
	} else {
		wh.enc = enc
	}
	return rh, wh
}

// Algorithm returns the half's currently installed algorithm.
func (r *ReadHalf) Algorithm() Algorithm { return r.alg }

// SwitchAlgorithm installs a fresh decoder for alg, discarding any
// in-flight decoder state. Idempotent when alg is already current.
func (r *ReadHalf) SwitchAlgorithm(alg Algorithm) error {
	if r.broken != nil {
		return r.broken
	}
	if alg == r.alg {
		return nil
	}
	r.alg = alg
	r.dec = nil
	return nil
}

// Read decompresses from the underlying reader through the half's
// current decoder.
func (r *ReadHalf) Read(p []byte) (int, error) {
	if r.broken != nil {
		return 0, r.broken
	}
	if r.dec == nil {
		dec, err := newDecoder(bufio.NewReader(r.r), r.alg)
		if err != nil {
			r.broken = fmt.Errorf("compress: open decoder %s: %w", r.alg, err)
			return 0, r.broken
		}
		r.dec = dec
	}
	n, err := r.dec.Read(p)
	if err != nil && err != io.EOF {
		r.broken = fmt.Errorf("compress: read %s: %w", r.alg, err)
		return n, r.broken
	}
	return n, err
}

// Algorithm returns the half's currently installed algorithm.
func (w *WriteHalf) Algorithm() Algorithm { return w.alg }

// SwitchAlgorithm finalizes the current encoder (emitting its trailer),
// then installs a fresh one for alg. A finalize failure leaves the half
// permanently broken.
func (w *WriteHalf) SwitchAlgorithm(alg Algorithm) error {
	if w.broken != nil {
		return w.broken
	}
	if alg == w.alg {
		return nil
	}
	if w.enc != nil {
		if err := w.enc.Close(); err != nil {
			w.broken = fmt.Errorf("compress: finalize %s: %w", w.alg, err)
			return w.broken
		}
	}
	enc, err := newEncoder(w.w, alg)
	if err != nil {
		w.broken = err
		return w.broken
	}
	w.alg = alg
	w.enc = enc
	return nil
}

// Write compresses p through the half's current encoder.
func (w *WriteHalf) Write(p []byte) (int, error) {
	if w.broken != nil {
		return 0, w.broken
	}
	n, err := w.enc.Write(p)
	if err != nil {
		w.broken = fmt.Errorf("compress: write %s: %w", w.alg, err)
		return n, w.broken
	}
	return n, nil
}

// Flush pushes any buffered compressed bytes without ending the stream.
func (w *WriteHalf) Flush() error {
	if w.broken != nil {
		return w.broken
	}
	if err := w.enc.Flush(); err != nil {
		w.broken = fmt.Errorf("compress: flush %s: %w", w.alg, err)
		return w.broken
	}
	return nil
}

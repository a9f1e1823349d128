// Package compress implements a dynamic, bidirectional compression
// duplex stream: a wrapper around a byte transport that can switch its
// wire framing (gzip, deflate, zlib, brotli, zstd, or none) at runtime
// while preserving the trailer/finalization semantics each format
// requires.
package compress

import "fmt"

// Algorithm selects the wire framing a Stream applies to its transport.
type Algorithm int

const (
	None Algorithm = iota
	Gzip
	Deflate
	Brotli
	Zlib
	Zstd
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Deflate:
		return "deflate"
	case Brotli:
		return "brotli"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

package png

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPNG is returned when the buffer does not start with the PNG signature.
	ErrNotPNG = errors.New("png: not a PNG image")
	// ErrHeaderSize is returned when an IHDR chunk is not 13 bytes long.
	ErrHeaderSize = errors.New("png: invalid IHDR length")
	// ErrUnterminated is returned when a null-terminated field has no
	// terminator inside its chunk.
	ErrUnterminated = errors.New("png: unterminated field")
	// ErrTruncated is returned when the buffer ends inside a chunk or before IEND.
	ErrTruncated = errors.New("png: unexpected end of data")
	// ErrChecksum is returned on a CRC mismatch when checksums are verified.
	ErrChecksum = errors.New("png: checksum mismatch")
)

// ChunkError records the chunk and the file offset where decoding failed.
type ChunkError struct {
	Type   string
	Offset int
	Field  string
	Err    error
}

func (e *ChunkError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v (chunk '%s' at %08x, %s)", e.Err, e.Type, e.Offset, e.Field)
	}
	if e.Type == "" {
		return fmt.Sprintf("%v (at %08x)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (chunk '%s' at %08x)", e.Err, e.Type, e.Offset)
}

func (e *ChunkError) Unwrap() error { return e.Err }

package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
)

var signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// File is a PNG file held in memory.
type File struct {
	// Chunks holds the decoded chunks in file order after a successful Parse.
	Chunks []Chunk

	buf  []byte
	opts options
}

// NewFile creates a new PNG file struct. buf is never modified.
func NewFile(buf []byte, opts ...Option) *File {
	f := &File{buf: buf}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

// Decode parses buf and returns its IHDR, tEXt and iTXt chunks in file order.
func Decode(buf []byte, opts ...Option) ([]Chunk, error) {
	f := NewFile(buf, opts...)
	if err := f.Parse(); err != nil {
		return nil, err
	}
	return f.Chunks, nil
}

// Parse walks the chunks up to IEND. Other chunk types are skipped.
// On error Chunks is left nil.
func (f *File) Parse() error {
	f.Chunks = nil

	c := &cursor{buf: f.buf}
	sig, ok := c.next(len(signature))
	if !ok || !bytes.Equal(sig, signature) {
		return ErrNotPNG
	}

	var chunks []Chunk
	for {
		// chunk = length, type, data, CRC
		start := c.off
		length, ok := c.uint32()
		if !ok {
			return &ChunkError{Offset: start, Err: ErrTruncated}
		}
		rawType, ok := c.next(4)
		if !ok {
			return &ChunkError{Offset: start, Err: ErrTruncated}
		}
		typ := lossy(rawType)

		if typ == IEND {
			break
		}
		if typ == IHDR && length != headerLength {
			return &ChunkError{Type: typ, Offset: start, Err: ErrHeaderSize}
		}

		data, err := f.readData(c, rawType, length)
		if err != nil {
			return withOffset(err, typ, start)
		}

		var chunk Chunk
		switch typ {
		case IHDR:
			chunk = parseHeader(data)
		case TEXT:
			chunk, err = parseText(data)
		case ITXT:
			chunk, err = parseInternationalText(data, f.opts.inflate)
		default:
			if f.opts.skip != nil {
				f.opts.skip(typ, length)
			}
			continue
		}
		if err != nil {
			return withOffset(err, typ, start)
		}
		chunks = append(chunks, chunk)
	}

	f.Chunks = chunks
	return nil
}

// Header returns the first IHDR chunk, or nil.
func (f *File) Header() *Header {
	for _, chunk := range f.Chunks {
		if h, ok := chunk.(*Header); ok {
			return h
		}
	}
	return nil
}

// readData consumes the chunk data and the CRC that follows it.
func (f *File) readData(c *cursor, rawType []byte, length uint32) ([]byte, error) {
	if uint64(length)+4 > uint64(c.remaining()) {
		return nil, ErrTruncated
	}
	data, _ := c.next(int(length))
	crc, _ := c.next(4)

	if f.opts.checksum {
		h := crc32.NewIEEE()
		h.Write(rawType)
		h.Write(data)
		if h.Sum32() != binary.BigEndian.Uint32(crc) {
			return nil, ErrChecksum
		}
	}
	return data, nil
}

func withOffset(err error, typ string, offset int) error {
	var ce *ChunkError
	if errors.As(err, &ce) {
		ce.Offset = offset
		return ce
	}
	return &ChunkError{Type: typ, Offset: offset, Err: err}
}

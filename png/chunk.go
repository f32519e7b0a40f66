package png

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Chunk types
const (
	IHDR = "IHDR" // Image header
	TEXT = "tEXt" // Textual data
	ITXT = "iTXt" // International textual data
	IEND = "IEND" // Image trailer
)

const headerLength = 13

// Chunk is a decoded chunk. It is one of *Header, *Text or *InternationalText.
type Chunk interface {
	// Type returns the four-letter chunk type.
	Type() string
	// Raw returns the chunk data exactly as stored in the file.
	Raw() []byte

	chunk()
}

// Header is the IHDR chunk.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8

	raw []byte
}

// Text is a tEXt chunk.
type Text struct {
	Keyword string
	Value   string

	raw []byte
}

// InternationalText is an iTXt chunk. Text holds the remaining bytes as
// stored unless the decoder was asked to inflate compressed text.
type InternationalText struct {
	Keyword           string
	CompressionFlag   uint8
	CompressionMethod uint8
	LanguageTag       string
	TranslatedKeyword string
	Text              string

	raw []byte
}

func (*Header) Type() string            { return IHDR }
func (*Text) Type() string              { return TEXT }
func (*InternationalText) Type() string { return ITXT }

func (h *Header) Raw() []byte            { return h.raw }
func (t *Text) Raw() []byte              { return t.raw }
func (t *InternationalText) Raw() []byte { return t.raw }

func (*Header) chunk()            {}
func (*Text) chunk()              {}
func (*InternationalText) chunk() {}

// Compressed reports whether the compression flag is set.
func (t *InternationalText) Compressed() bool {
	return t.CompressionFlag == 1
}

func parseHeader(data []byte) *Header {
	return &Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
		raw:               bytes.Clone(data),
	}
}

// parseText parses "keyword\0text".
func parseText(data []byte) (*Text, error) {
	n, ok := nullTerminated(data)
	if !ok {
		return nil, fieldError(TEXT, "keyword", ErrUnterminated)
	}
	return &Text{
		Keyword: lossy(data[:n-1]),
		Value:   lossy(data[n:]),
		raw:     bytes.Clone(data),
	}, nil
}

// parseInternationalText parses
// "keyword\0 flag method language\0 translated\0 text".
func parseInternationalText(data []byte, inflateText bool) (*InternationalText, error) {
	t := &InternationalText{raw: bytes.Clone(data)}

	n, ok := nullTerminated(data)
	if !ok {
		return nil, fieldError(ITXT, "keyword", ErrUnterminated)
	}
	t.Keyword = lossy(data[:n-1])
	data = data[n:]

	if len(data) < 2 {
		return nil, fieldError(ITXT, "compression", ErrTruncated)
	}
	t.CompressionFlag = data[0]
	t.CompressionMethod = data[1]
	data = data[2:]

	n, ok = nullTerminated(data)
	if !ok {
		return nil, fieldError(ITXT, "language tag", ErrUnterminated)
	}
	t.LanguageTag = lossy(data[:n-1])
	data = data[n:]

	n, ok = nullTerminated(data)
	if !ok {
		return nil, fieldError(ITXT, "translated keyword", ErrUnterminated)
	}
	t.TranslatedKeyword = lossy(data[:n-1])
	data = data[n:]

	// only method 0 (zlib) is defined
	if inflateText && t.Compressed() && t.CompressionMethod == 0 {
		inflated, err := inflate(data)
		if err != nil {
			return nil, fieldError(ITXT, "text", err)
		}
		data = inflated
	}
	t.Text = lossy(data)

	return t, nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

func fieldError(typ, field string, err error) error {
	return &ChunkError{Type: typ, Field: field, Err: err}
}

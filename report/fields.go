// Package report renders decoded PNG chunks for people.
package report

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/ysh86/lspng/png"
)

// Field labels
const (
	Width             = "Width"
	Height            = "Height"
	BitDepth          = "Bit depth"
	ColorType         = "Colour type"
	CompressionMethod = "Compression method"
	FilterMethod      = "Filter method"
	InterlaceMethod   = "Interlace method"
	Keyword           = "Keyword"
	TextString        = "Text string"
	CompressionFlag   = "Compression flag"
	LanguageTag       = "Language tag"
	TranslatedKeyword = "Translated keyword"
	Text              = "Text"
)

var colorTypeName = map[uint8]string{
	0: "Greyscale",
	2: "RGB",
	3: "Indexed color",
	4: "Greyscale Alpha",
	6: "RGBA",
}

// Fields returns the labelled fields of c in display order.
func Fields(c png.Chunk) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.NewOrderedMap[string, string]()

	switch c := c.(type) {
	case *png.Header:
		m.Set(Width, fmt.Sprintf("%d pixels", c.Width))
		m.Set(Height, fmt.Sprintf("%d pixels", c.Height))
		m.Set(BitDepth, fmt.Sprintf("%d bits per channel", c.BitDepth))
		m.Set(ColorType, ColorTypeName(c.ColorType))
		m.Set(CompressionMethod, CompressionMethodName(c.CompressionMethod))
		m.Set(FilterMethod, FilterMethodName(c.FilterMethod))
		m.Set(InterlaceMethod, InterlaceMethodName(c.InterlaceMethod))
	case *png.Text:
		m.Set(Keyword, c.Keyword)
		m.Set(TextString, c.Value)
	case *png.InternationalText:
		m.Set(Keyword, c.Keyword)
		m.Set(CompressionFlag, CompressionFlagName(c.CompressionFlag))
		m.Set(CompressionMethod, TextCompressionName(c.CompressionFlag, c.CompressionMethod))
		m.Set(LanguageTag, c.LanguageTag)
		m.Set(TranslatedKeyword, c.TranslatedKeyword)
		m.Set(Text, c.Text)
	}

	return m
}

// ColorTypeName returns the name of an IHDR colour type, e.g. "RGBA(6)".
func ColorTypeName(v uint8) string {
	name, ok := colorTypeName[v]
	if !ok {
		name = "Unknown colour type"
	}
	return coded(name, v)
}

// CompressionMethodName names the IHDR compression method.
func CompressionMethodName(v uint8) string {
	if v == 0 {
		return coded("DEFLATE", v)
	}
	return coded("Unknown compression method", v)
}

// FilterMethodName names the IHDR filter method.
func FilterMethodName(v uint8) string {
	if v == 0 {
		return coded("Adaptive", v)
	}
	return coded("Unknown filter method", v)
}

// InterlaceMethodName names the IHDR interlace method.
func InterlaceMethodName(v uint8) string {
	switch v {
	case 0:
		return coded("No interlace", v)
	case 1:
		return coded("Adam7", v)
	}
	return coded("Unknown interlace method", v)
}

// CompressionFlagName names the iTXt compression flag.
func CompressionFlagName(v uint8) string {
	switch v {
	case 0:
		return coded("Uncompressed", v)
	case 1:
		return coded("Compressed", v)
	}
	return coded("Unknown compression flag", v)
}

// TextCompressionName names the iTXt compression method. The method is
// only meaningful when the compression flag is set.
func TextCompressionName(flag, method uint8) string {
	if flag == 1 && method == 0 {
		return coded("Zlib compression method", method)
	}
	return coded("Uncompressed", method)
}

func coded(name string, v uint8) string {
	return fmt.Sprintf("%s(%d)", name, v)
}

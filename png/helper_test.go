package png

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// chunkBytes encodes a chunk with a valid CRC.
func chunkBytes(typ string, data []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(typ)
	buf.Write(data)

	h := crc32.NewIEEE()
	h.Write([]byte(typ))
	h.Write(data)
	binary.Write(&buf, binary.BigEndian, h.Sum32())
	return buf.Bytes()
}

func buildPNG(chunks ...[]byte) []byte {
	buf := append([]byte{}, signature...)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

func ihdrData(width, height uint32, bitDepth, colorType, compression, filter, interlace byte) []byte {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], width)
	binary.BigEndian.PutUint32(data[4:8], height)
	data[8] = bitDepth
	data[9] = colorType
	data[10] = compression
	data[11] = filter
	data[12] = interlace
	return data
}

func iendChunk() []byte {
	return chunkBytes(IEND, nil)
}

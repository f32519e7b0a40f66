package png

import (
	"bytes"
	"image"
	"image/color"
	stdpng "image/png"
	"testing"
)

func FuzzDecode(f *testing.F) {
	{
		img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
		var buf bytes.Buffer
		if err := stdpng.Encode(&buf, img); err == nil {
			f.Add(buf.Bytes())
		}
	}
	f.Add(buildPNG(
		chunkBytes(IHDR, ihdrData(1, 1, 8, 6, 0, 0, 0)),
		chunkBytes(TEXT, []byte("Software\x00lspng")),
		chunkBytes(ITXT, []byte("Title\x00\x01\x00en\x00Titel\x00x\x9c")),
		iendChunk(),
	))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		orig := bytes.Clone(data)
		chunks, err := Decode(data, WithChecksum(), WithInflate())
		if err != nil && chunks != nil {
			t.Fatalf("chunks returned with error %v", err)
		}
		for _, c := range chunks {
			if h, ok := c.(*Header); ok && len(h.Raw()) != headerLength {
				t.Fatalf("IHDR raw length %d", len(h.Raw()))
			}
		}
		if !bytes.Equal(data, orig) {
			t.Fatalf("input modified")
		}
	})
}

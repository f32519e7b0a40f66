package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ysh86/lspng/png"
)

// WriteText lists chunks in the lspng text format.
func WriteText(w io.Writer, chunks []png.Chunk) error {
	var buf bytes.Buffer
	for _, c := range chunks {
		fmt.Fprintf(&buf, "chunk '%s' (%d bytes)\n", c.Type(), len(c.Raw()))
		for name, value := range Fields(c).AllFromFront() {
			buf.WriteString("  ")
			buf.WriteString(padRight(name, 18))
			buf.WriteString(": ")
			buf.WriteString(value)
			buf.WriteString("\n")
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSON writes chunks as a JSON array. Field keys keep display order.
func WriteJSON(w io.Writer, chunks []png.Chunk) error {
	var buf bytes.Buffer
	appendChunks(&buf, chunks)
	return writeIndented(w, buf.Bytes())
}

// File is the decoded chunks of one named file.
type File struct {
	Name   string
	Chunks []png.Chunk
}

// WriteJSONFiles writes one JSON array with a {"file", "chunks"} object per file.
func WriteJSONFiles(w io.Writer, files []File) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range files {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"file":%s,"chunks":`, quote(f.Name))
		appendChunks(&buf, f.Chunks)
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return writeIndented(w, buf.Bytes())
}

func appendChunks(buf *bytes.Buffer, chunks []png.Chunk) {
	buf.WriteByte('[')
	for i, c := range chunks {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, `{"type":%s,"length":%d,"fields":{`, quote(c.Type()), len(c.Raw()))
		first := true
		for name, value := range Fields(c).AllFromFront() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.WriteString(quote(name))
			buf.WriteByte(':')
			buf.WriteString(quote(value))
		}
		buf.WriteString("}}")
	}
	buf.WriteByte(']')
}

func writeIndented(w io.Writer, compact []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}

package png

import (
	"encoding/binary"
	"strings"
)

// cursor is a forward-only read offset into an immutable buffer.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// next returns the next n bytes and moves past them. It reports false,
// without moving, when fewer than n bytes are left.
func (c *cursor) next(n int) ([]byte, bool) {
	if n < 0 || n > c.remaining() {
		return nil, false
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, true
}

func (c *cursor) uint32() (uint32, bool) {
	b, ok := c.next(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// lossy decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// nullTerminated returns the length of the field at the start of b,
// including its null terminator.
func nullTerminated(b []byte) (int, bool) {
	for i, v := range b {
		if v == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

package png

type options struct {
	checksum bool
	inflate  bool
	skip     func(typ string, length uint32)
}

// Option configures a File.
type Option func(*options)

// WithChecksum verifies the CRC of every chunk read or skipped before IEND.
// By default CRCs are skipped unread.
func WithChecksum() Option {
	return func(o *options) { o.checksum = true }
}

// WithInflate inflates zlib-compressed iTXt text. By default compressed
// text is returned as stored.
func WithInflate() Option {
	return func(o *options) { o.inflate = true }
}

// WithSkipFunc sets a function called for each chunk that is skipped.
func WithSkipFunc(fn func(typ string, length uint32)) Option {
	return func(o *options) { o.skip = fn }
}

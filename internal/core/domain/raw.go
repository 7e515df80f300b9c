package domain

// RawDocument represents opaque bytes read by a source.
// It is the source's output before parsing.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// Content is the raw bytes.
	Content []byte
}

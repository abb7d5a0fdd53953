package nbt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// ReadCompressed decompresses a gzip stream and parses the NBT document
// inside. Malformed gzip framing yields *CompressionError; a malformed
// document inside yields *FormatError.
func ReadCompressed(data []byte) (string, Tag, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", Tag{}, &CompressionError{Err: err}
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", Tag{}, &CompressionError{Err: err}
	}
	if err := zr.Close(); err != nil {
		return "", Tag{}, &CompressionError{Err: err}
	}
	return Read(raw)
}

// WriteCompressed serializes a named root tag as a gzip-compressed document.
func WriteCompressed(name string, t Tag) ([]byte, error) {
	raw, err := Append(nil, name, t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

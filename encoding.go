package xmlparser

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies one of the two input encodings the parser
// accepts. UNKNOWN defaults to UTF-8 and is never what a Document
// reports once loaded.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingUTF8
	// EncodingLegacy is the host's legacy single-byte encoding, modeled
	// as Windows-1252: bytes below 0x80 are ASCII, bytes 0x80-0xFF map
	// through cp1252.
	EncodingLegacy
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// detectBOM reports whether buf starts with the UTF-8 byte-order mark and
// returns the buffer with it stripped when present.
func detectBOM(buf []byte) (rest []byte, hasBOM bool) {
	if bytes.HasPrefix(buf, utf8BOM) {
		return buf[len(utf8BOM):], true
	}
	return buf, false
}

// transcodeLegacyToUTF8 converts buf from the legacy single-byte
// encoding to canonical UTF-8, the internal representation every
// node's Value() is stored in.
func transcodeLegacyToUTF8(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	for _, b := range buf {
		if b < 0x80 {
			out = append(out, b)
		} else {
			r := charmap.Windows1252.DecodeByte(b)
			out = append(out, []byte(string(r))...)
		}
	}
	return out
}

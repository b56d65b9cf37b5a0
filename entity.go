package xmlparser

import (
	"fmt"
	"strconv"
	"strings"
)

// entityTable is the fixed set of named entities the decoder
// recognizes. Each token is compared whole, up to and including its
// ';', so the order of the entries does not affect matching.
var entityTable = []struct {
	token string
	value byte
}{
	{"&amp;", '&'},
	{"&lt;", '<'},
	{"&gt;", '>'},
	{"&quot;", '"'},
	{"&apos;", '\''},
}

// maxEntityLookahead bounds how far decodeEntity scans for the
// terminating ';' before giving up.
const maxEntityLookahead = 10

// decodeEntity decodes the entity reference beginning at buf[0] (which
// must be '&'). It returns the decoded bytes (re-encoded per enc for
// numeric references), the number of source bytes consumed, and an error
// if the reference is unterminated or unrecognized.
func decodeEntity(buf []byte, enc Encoding) ([]byte, int, error) {
	if len(buf) == 0 || buf[0] != '&' {
		return nil, 0, fmt.Errorf("decodeEntity: not an entity reference")
	}

	limit := len(buf)
	if limit > maxEntityLookahead+1 {
		limit = maxEntityLookahead + 1
	}

	semi := -1
	for i := 1; i < limit; i++ {
		if buf[i] == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return nil, 0, fmt.Errorf("unterminated entity reference")
	}

	tok := string(buf[:semi+1])
	for _, e := range entityTable {
		if tok == e.token {
			return []byte{e.value}, semi + 1, nil
		}
	}

	if strings.HasPrefix(tok, "&#x") || strings.HasPrefix(tok, "&#X") {
		hex := tok[3 : len(tok)-1]
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid hex character reference %q", tok)
		}
		return encodeCodepoint(rune(cp), enc), semi + 1, nil
	}
	if strings.HasPrefix(tok, "&#") {
		dec := tok[2 : len(tok)-1]
		cp, err := strconv.ParseUint(dec, 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid decimal character reference %q", tok)
		}
		return encodeCodepoint(rune(cp), enc), semi + 1, nil
	}

	return nil, 0, fmt.Errorf("unrecognized entity reference %q", tok)
}

// encodeCodepoint re-encodes a decoded numeric character reference's
// code point per the active input encoding: a canonical UTF-8 sequence
// when encoding is UTF-8, or the byte itself when < 128 and "?"
// otherwise for the legacy single-byte encoding.
func encodeCodepoint(cp rune, enc Encoding) []byte {
	if enc == EncodingLegacy {
		if cp < 128 {
			return []byte{byte(cp)}
		}
		return []byte{'?'}
	}
	return []byte(string(cp))
}

// EncodeText escapes b for use as XML character data: '&', '<', '>'
// become their predefined entities, control bytes below 0x20 other
// than tab/newline/CR become "&#xHH;", everything else is emitted
// verbatim. Quote characters are left unescaped: text content is not
// quote-delimited, and attribute values rely on this to let the
// printer choose a delimiter the value doesn't already contain.
func EncodeText(b []byte) string {
	return encodeString(b, false)
}

// EncodeAttributeValue escapes b for use inside a quoted attribute
// value. It follows the same rules as EncodeText, with one quirk: a
// literal "&#x" hex character reference already present in the input
// is passed through unchanged, even when its terminating ';' is
// missing. This is a known compatibility quirk, preserved verbatim for
// round-trip fidelity.
func EncodeAttributeValue(b []byte) string {
	return encodeString(b, true)
}

func encodeString(b []byte, attr bool) string {
	var out strings.Builder
	out.Grow(len(b))

	for i := 0; i < len(b); i++ {
		c := b[i]

		if attr && c == '&' && i+2 < len(b) && b[i+1] == '#' && (b[i+2] == 'x' || b[i+2] == 'X') {
			j := i
			for j < len(b)-1 {
				out.WriteByte(b[j])
				j++
				if b[j] == ';' {
					break
				}
			}
			out.WriteByte(b[j])
			i = j
			continue
		}

		switch c {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
				fmt.Fprintf(&out, "&#x%02X;", c)
			} else {
				out.WriteByte(c)
			}
		}
	}
	return out.String()
}

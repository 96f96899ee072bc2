package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// PEP-263: the cookie must appear in a comment on the first or second line.
var codingCookieRe = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)

// decodeCodingCookie scans the first two lines for a coding cookie and, if
// one names an encoding other than UTF-8/ASCII, transcodes the whole content
// to UTF-8. The cookie comment itself stays in the text. Returns the content
// (possibly transcoded) and the canonical encoding name ("" when absent or
// already UTF-8 compatible), not the cookie's raw spelling.
func decodeCodingCookie(content []byte) ([]byte, string, error) {
	name := findCodingCookie(content)
	if name == "" {
		return content, "", nil
	}

	enc, canonical, err := lookupEncoding(name)
	if err != nil {
		return nil, "", err
	}
	if enc == nil {
		// UTF-8 or ASCII: bytes are already what the lexer expects.
		return content, "", nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s source: %w", name, err)
	}
	return decoded, canonical, nil
}

func findCodingCookie(content []byte) string {
	rest := content
	for line := 0; line < 2; line++ {
		var cur []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			cur, rest = rest[:i], rest[i+1:]
		} else {
			cur, rest = rest, nil
		}
		if m := codingCookieRe.FindSubmatch(cur); m != nil {
			return string(m[1])
		}
		if rest == nil {
			break
		}
	}
	return ""
}

// lookupEncoding resolves a cookie name to a decoder plus the canonical
// name that name maps to. A nil encoding with a nil error means no
// transcoding is needed.
func lookupEncoding(name string) (encoding.Encoding, string, error) {
	normalized := strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	switch normalized {
	case "utf-8", "utf8", "ascii", "us-ascii":
		return nil, "", nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		normalized = "iso-8859-1"
	case "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "utf-16", nil
	}

	enc, err := ianaindex.IANA.Encoding(normalized)
	if err != nil || enc == nil {
		// Python-style cpNNN spellings are not IANA names.
		if strings.HasPrefix(normalized, "cp") {
			windows := "windows-" + normalized[2:]
			if e, err2 := ianaindex.IANA.Encoding(windows); err2 == nil && e != nil {
				return e, windows, nil
			}
		}
		return nil, "", fmt.Errorf("unknown source encoding %q", name)
	}
	return enc, normalized, nil
}

package ingestion

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// substrings expected in a correctly decoded scholarship header
var headerProbes = []string{"운영기관명", "상품명", "장학"}

// Encoding is the detected character set of an upload.
type Encoding struct {
	Name    string
	decoder encoding.Encoding
}

type candidate struct {
	name string
	enc  encoding.Encoding
}

// Legacy Korean encodings, tried in order. x/text's EUC-KR decoder is a
// CP949 decoder (EUC-KR plus the UHC extension), so one probe covers both.
var legacyCandidates = []candidate{
	{"CP949", korean.EUCKR},
}

// DetectEncoding checks for a UTF-8 BOM, then a legacy Korean encoding whose
// decoded text contains a known header substring, then falls back to UTF-8.
func DetectEncoding(raw []byte) Encoding {
	if bytes.HasPrefix(raw, utf8BOM) {
		return Encoding{Name: "UTF-8", decoder: unicode.UTF8BOM}
	}
	// no separate EUC-KR probe: every EUC-KR file decodes under the CP949 one
	for _, c := range legacyCandidates {
		text, _, err := transform.Bytes(c.enc.NewDecoder(), raw)
		if err != nil {
			continue
		}
		if containsProbe(string(text)) {
			return Encoding{Name: c.name, decoder: c.enc}
		}
	}
	return Encoding{Name: "UTF-8", decoder: unicode.UTF8}
}

// Decode converts raw bytes to UTF-8 text, dropping a leading BOM.
func (e Encoding) Decode(raw []byte) (string, error) {
	text, _, err := transform.Bytes(e.decoder.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(text), "\uFEFF"), nil
}

func containsProbe(text string) bool {
	for _, p := range headerProbes {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

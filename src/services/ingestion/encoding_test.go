package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func TestDetectEncodingCoversEucKrAndCp949(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"plain EUC-KR", "번호,운영기관명,상품명\n1,한국장학재단,국가장학금\n"},
		{"CP949 extension syllable", "번호,운영기관명,상품명\n1,똠방각하재단,장학금\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(tc.text))
			require.NoError(t, err)

			enc := DetectEncoding(raw)
			assert.Equal(t, "CP949", enc.Name)

			text, err := enc.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestDetectEncodingUTF8(t *testing.T) {
	raw := []byte("\uFEFF번호,상품명\n")
	enc := DetectEncoding(raw)
	assert.Equal(t, "UTF-8", enc.Name)

	text, err := enc.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "번호,상품명\n", text)

	assert.Equal(t, "UTF-8", DetectEncoding([]byte("번호,상품명\n")).Name)
}

package xmltv

import (
	"bytes"
	"compress/gzip"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE tv SYSTEM "xmltv.dtd">
<tv source-info-name="upstream">
  <channel id="c1">
    <display-name lang="en">ITN</display-name>
    <icon src="http://example.com/itn.png"/>
  </channel>
  <channel id="c2">
    <display-name>Hiru</display-name>
    <display-name>Hiru TV</display-name>
  </channel>
  <channel id="c3"/>
  <programme start="20241122205700 +0530" stop="20241122210100 +0530" channel="c1">
    <title lang="en">News &amp; Weather</title>
  </programme>
  <extra>dropped</extra>
</tv>
`

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	doc, err := Decode(gzipBytes(t, []byte(sampleXML)))
	require.NoError(t, err)

	require.Len(t, doc.Channels, 3)
	assert.Equal(t, "c1", doc.Channels[0].ID)
	assert.Equal(t, []string{"ITN"}, doc.Channels[0].DisplayNames)
	assert.Equal(t, []string{"Hiru", "Hiru TV"}, doc.Channels[1].DisplayNames)
	assert.Empty(t, doc.Channels[2].DisplayNames)
	assert.Contains(t, string(doc.Channels[0].InnerXML), `<icon src="http://example.com/itn.png"/>`)

	require.Len(t, doc.Programmes, 1)
	p := doc.Programmes[0]
	assert.Equal(t, "c1", p.Channel)
	assert.Equal(t, "20241122205700 +0530", p.Start)
	assert.Equal(t, "20241122210100 +0530", p.Stop)
	assert.Contains(t, string(p.InnerXML), "News &amp; Weather")
}

func TestDecodeErrors(t *testing.T) {
	t.Run("not gzip", func(t *testing.T) {
		_, err := Decode([]byte(sampleXML))
		var target *DecompressionError
		require.True(t, errors.As(err, &target), "got %v", err)
	})

	t.Run("truncated gzip", func(t *testing.T) {
		data := gzipBytes(t, []byte(sampleXML))
		_, err := Decode(data[:len(data)-6])
		var target *DecompressionError
		require.True(t, errors.As(err, &target), "got %v", err)
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, err := Decode(gzipBytes(t, []byte(`<tv><channel id="c1"></tv>`)))
		var target *ParseError
		require.True(t, errors.As(err, &target), "got %v", err)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Decode(gzipBytes(t, nil))
		var target *ParseError
		require.True(t, errors.As(err, &target), "got %v", err)
	})

	t.Run("second root element", func(t *testing.T) {
		_, err := Decode(gzipBytes(t, []byte(`<tv></tv><tv></tv>`)))
		var target *ParseError
		require.True(t, errors.As(err, &target), "got %v", err)
	})
}

func TestParseCharset(t *testing.T) {
	// "Télé" 使用ISO-8859-1编码
	content := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<tv><channel id=\"c1\"><display-name>T\xe9l\xe9</display-name></channel></tv>")
	doc, err := Parse(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, doc.Channels, 1)
	assert.Equal(t, []string{"Télé"}, doc.Channels[0].DisplayNames)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 11, 22, 20, 57, 0, 0, time.UTC)

	for _, value := range []string{"20241122205700", "20241122205700 +0530", "20241122205700 -0800 extra"} {
		got, err := ParseTime("start", value)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), "%s: got %v", value, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	for _, value := range []string{"", "2024112220570", "202411222057000", "2024112220570A", "2024-11-22 20:57", "20241322205700", " 20241122205700"} {
		_, err := ParseTime("stop", value)
		var target *TimestampFormatError
		require.True(t, errors.As(err, &target), "%q: got %v", value, err)
		assert.Equal(t, "stop", target.Attr)
		assert.Equal(t, value, target.Value)
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "20241122152700 +0000", FormatTime(time.Date(2024, 11, 22, 20, 57, 0, 0, loc)))
}

func TestEncodeKeepsRawContent(t *testing.T) {
	src, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	doc := NewDocument()
	doc.Channels = src.Channels[:1]
	doc.Programmes = src.Programmes

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `generator-info-name="epgLK"`)
	assert.Contains(t, out, `<channel id="c1">`)
	assert.Contains(t, out, `<icon src="http://example.com/itn.png"/>`)
	assert.Contains(t, out, `<programme start="20241122205700 +0530" stop="20241122210100 +0530" channel="c1">`)
	assert.Contains(t, out, "News &amp; Weather")
	assert.NotContains(t, out, "c2")
	assert.NotContains(t, out, "extra")
	assert.NotContains(t, out, "upstream")

	// 写出的文档可以再次解析
	again, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, again.Channels, 1)
	assert.Equal(t, []string{"ITN"}, again.Channels[0].DisplayNames)
	require.Len(t, again.Programmes, 1)
	assert.Equal(t, "c1", again.Programmes[0].Channel)
}

func TestEncodeEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument()))

	doc, err := Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, doc.Channels)
	assert.Empty(t, doc.Programmes)
}

func TestEncodeConstructedEntries(t *testing.T) {
	doc := NewDocument()
	doc.Channels = []Channel{{ID: "c9", DisplayNames: []string{"A & B"}}}
	doc.Programmes = []Programme{{Channel: "c9", Start: "20240101000000 +0000", Stop: "20240101010000 +0000"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	again, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, again.Channels, 1)
	assert.Equal(t, "c9", again.Channels[0].ID)
	assert.Equal(t, []string{"A & B"}, again.Channels[0].DisplayNames)
	require.Len(t, again.Programmes, 1)
	assert.Equal(t, "20240101010000 +0000", again.Programmes[0].Stop)
}

func TestProgrammeTitle(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)
	assert.Equal(t, "News & Weather", doc.Programmes[0].Title())

	assert.Empty(t, (&Programme{}).Title())
	assert.Empty(t, (&Programme{InnerXML: []byte("<desc>no title</desc>")}).Title())
}

package torrent

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krywicki/ditto/internal/bencode"
)

func conversionKind(t *testing.T, err error) ConversionKind {
	t.Helper()
	var ce *ConversionError
	require.True(t, errors.As(err, &ce), "expected a conversion error, got %v", err)
	return ce.Kind
}

func TestToPath(t *testing.T) {
	p, err := toPath("path", bencode.List{bencode.String("a"), bencode.String("b"), bencode.String("c.txt")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("a", "b", "c.txt"), p)

	p, err = toPath("path", bencode.List{bencode.String("only")})
	require.NoError(t, err)
	assert.Equal(t, "only", p)
}

func TestToPathErrors(t *testing.T) {
	cases := map[string]struct {
		value bencode.Value
		kind  ConversionKind
	}{
		"invalid utf-8":    {bencode.List{bencode.String("a"), bencode.String("\xff")}, InvalidValue},
		"empty list":       {bencode.List{}, InvalidValue},
		"empty segment":    {bencode.List{bencode.String("a"), bencode.String("")}, InvalidValue},
		"parent segment":   {bencode.List{bencode.String(".."), bencode.String("etc")}, InvalidValue},
		"current segment":  {bencode.List{bencode.String(".")}, InvalidValue},
		"hidden traversal": {bencode.List{bencode.String("a/../.."), bencode.String("etc"), bencode.String("passwd")}, InvalidValue},
		"separator":        {bencode.List{bencode.String("a/b")}, InvalidValue},
		"not a list":       {bencode.String("a/b"), InvalidType},
		"integer segment":  {bencode.List{bencode.Int(1)}, InvalidType},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := toPath("path", tc.value)
			require.Error(t, err)
			assert.Equal(t, tc.kind, conversionKind(t, err))
		})
	}
}

func TestToTimestamp(t *testing.T) {
	ts, err := toTimestamp("creation date", bencode.Int(0))
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).UTC(), ts)

	ts, err = toTimestamp("creation date", bencode.Int(-86400))
	require.NoError(t, err)
	assert.Equal(t, 1969, ts.Year())
	assert.Equal(t, 0, ts.Nanosecond())
}

func TestFlattenAnnounceList(t *testing.T) {
	tiers := bencode.List{
		bencode.List{bencode.String("a"), bencode.String("b")},
		bencode.List{bencode.String("c")},
	}

	urls, err := flattenAnnounceList("announce-list", tiers)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, urls)
}

func TestFlattenAnnounceListEmptyTiers(t *testing.T) {
	urls, err := flattenAnnounceList("announce-list", bencode.List{bencode.List{}, bencode.List{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, urls)
}

func TestParseTrackerURLs(t *testing.T) {
	v := bencode.List{
		bencode.String("http://a.example.com/announce"),
		bencode.List{
			bencode.String("udp://b.example.com:6969"),
			bencode.List{bencode.String("https://c.example.com/announce")},
		},
	}

	urls, err := parseTrackerURLs("announce-list", v)
	require.NoError(t, err)
	require.Len(t, urls, 3)
	assert.Equal(t, "a.example.com", urls[0].Host)
	assert.Equal(t, "udp", urls[1].Scheme)
	assert.Equal(t, "/announce", urls[2].Path)

	urls, err = parseTrackerURLs("announce", bencode.String("http://tracker/"))
	require.NoError(t, err)
	require.Len(t, urls, 1)
}

func TestParseTrackerURLsErrors(t *testing.T) {
	cases := map[string]struct {
		value bencode.Value
		kind  ConversionKind
	}{
		"invalid utf-8":     {bencode.String("http://\xff/"), InvalidValue},
		"relative":          {bencode.String("/announce"), InvalidValue},
		"unparseable":       {bencode.String("http://[::1"), InvalidValue},
		"integer element":   {bencode.List{bencode.String("http://ok/"), bencode.Int(3)}, InvalidType},
		"dict element":      {bencode.List{bencode.Dict{}}, InvalidType},
		"integer top-level": {bencode.Int(3), InvalidType},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseTrackerURLs("announce", tc.value)
			require.Error(t, err)
			assert.Equal(t, tc.kind, conversionKind(t, err))
		})
	}
}

func TestToBytesCopies(t *testing.T) {
	src := bencode.String{0xff, 0x00}
	out, err := toBytes("pieces", src)
	require.NoError(t, err)

	src[0] = 0x01
	assert.Equal(t, []byte{0xff, 0x00}, out)
}

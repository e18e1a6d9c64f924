package torrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 KiB"},
		{1023, "0 KiB"},
		{1024, "1 KiB"},
		{1024*1000 - 1, "999 KiB"},
		{1024 * 1000, "1 MiB"},
		{1024 * 1024, "1 MiB"},
		{1024 * 1000 * 1000, "1 GiB"},
		{1024 * 1000 * 1000 * 1000, "1 TiB"},
		{5 * 1024 * 1000 * 1000 * 1000 * 1000, "5000 TiB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.size), "size %d", tc.size)
	}
}

func TestStringSingleFile(t *testing.T) {
	tor, err := ParseTorrent(singleFileTorrent())
	require.NoError(t, err)

	want := "name              : test\n" +
		"comment           : hello\n" +
		"creation-date     : 2023-11-14 22:13:20\n" +
		"announce          : http://tracker.example.com/announce\n" +
		"announce list     : \n" +
		"                http://a.example.com/announce\n" +
		"                udp://b.example.com:80\n" +
		"                http://c.example.com/announce\n" +
		"files (1)         : test\n"

	assert.Equal(t, want, tor.String())
}

func TestStringMultiFile(t *testing.T) {
	tor, err := ParseTorrent(multiFileTorrent())
	require.NoError(t, err)

	want := "name              : collection\n" +
		"comment           : \n" +
		"creation-date     : 1970-01-01 00:00:00\n" +
		"announce          : http://tracker.example.com/announce\n" +
		"announce list     : \n" +
		"files (2)         : [1 KiB] dir/a.txt\n" +
		"                    [1 MiB] dir/sub/b.bin\n"

	assert.Equal(t, want, tor.String())
}

func TestStringEmptyFilesShowsName(t *testing.T) {
	tor := &Torrent{Info: Info{Name: "empty", Files: []File{}}}

	assert.Contains(t, tor.String(), "files (1)         : empty\n")
}

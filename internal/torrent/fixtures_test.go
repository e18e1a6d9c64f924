package torrent

import (
	"bytes"
	"fmt"
	"strings"
)

// str bencodes a byte string.
func str(s string) string {
	return fmt.Sprintf("%d:%s", len(s), s)
}

func list(items ...string) string {
	return "l" + strings.Join(items, "") + "e"
}

// dict expects key/value pairs already encoded, keys in sorted order.
func dict(pairs ...string) string {
	var b strings.Builder
	b.WriteString("d")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(str(pairs[i]))
		b.WriteString(pairs[i+1])
	}
	b.WriteString("e")
	return b.String()
}

func integer(n int64) string {
	return fmt.Sprintf("i%de", n)
}

// testPieces is binary and not valid UTF-8.
var testPieces = string(bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef, 0x00}, 8))

func singleFileInfo() string {
	return dict(
		"length", integer(100),
		"name", str("test"),
		"piece length", integer(16384),
		"pieces", str(testPieces),
	)
}

func multiFileInfo() string {
	return dict(
		"files", list(
			dict("length", integer(1024), "md5sum", str("0123456789abcdef0123456789abcdef"), "path", list(str("dir"), str("a.txt"))),
			dict("length", integer(1024*1000), "path", list(str("dir"), str("sub"), str("b.bin"))),
		),
		"name", str("collection"),
		"piece length", integer(262144),
		"pieces", str(testPieces),
	)
}

func singleFileTorrent() []byte {
	return []byte(dict(
		"announce", str("http://tracker.example.com/announce"),
		"announce-list", list(
			list(str("http://a.example.com/announce"), str("udp://b.example.com:80")),
			list(str("http://c.example.com/announce")),
		),
		"comment", str("hello"),
		"created by", str("ditto"),
		"creation date", integer(1700000000),
		"info", singleFileInfo(),
	))
}

func multiFileTorrent() []byte {
	return []byte(dict(
		"announce", str("http://tracker.example.com/announce"),
		"info", multiFileInfo(),
	))
}

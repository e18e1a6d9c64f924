package torrent

// File represents a file in a multi-file torrent
type File struct {
	Path   string
	Length int64
	MD5Sum *string
}

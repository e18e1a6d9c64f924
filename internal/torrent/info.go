package torrent

import (
	"errors"
	"fmt"
)

// PieceHashLen is the size of one SHA-1 piece hash.
const PieceHashLen = 20

// Info represents the info dictionary of a torrent
type Info struct {
	Name        string
	Pieces      []byte
	PieceLength int64

	Length *int64
	Files  []File
	MD5Sum *string
}

// IsSingleFile returns true if this is a single-file torrent
func (i *Info) IsSingleFile() bool {
	return i.Length != nil
}

// IsMultiFile returns true if this is a multi-file torrent
func (i *Info) IsMultiFile() bool {
	return len(i.Files) > 0
}

// NumPieces counts whole piece hashes. Trailing bytes are ignored.
func (i *Info) NumPieces() int {
	return len(i.Pieces) / PieceHashLen
}

// Validate checks the rules the decoder itself leaves alone.
func (i *Info) Validate() error {
	if i.PieceLength <= 0 {
		return errors.New("piece length must be positive")
	}

	if len(i.Pieces) == 0 {
		return errors.New("no piece hashes provided")
	}

	if len(i.Pieces)%PieceHashLen != 0 {
		return fmt.Errorf("invalid pieces length %d: must be multiple of %d", len(i.Pieces), PieceHashLen)
	}

	// Validate single vs multi-file consistency
	if i.IsSingleFile() && i.IsMultiFile() {
		return errors.New("torrent cannot be both single-file and multi-file")
	}

	if !i.IsSingleFile() && !i.IsMultiFile() {
		return errors.New("torrent must specify either length or files")
	}

	return nil
}

func (i *Info) TotalLength() int64 {
	if i.IsSingleFile() {
		return *i.Length
	}

	var total int64
	for _, file := range i.Files {
		total += file.Length
	}
	return total
}

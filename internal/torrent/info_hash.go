package torrent

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	zbencode "github.com/zeebo/bencode"
)

type InfoHash [20]byte

func (ih InfoHash) String() string {
	return hex.EncodeToString(ih[:])
}

// rawMetainfo captures the info dictionary exactly as it appears on disk.
type rawMetainfo struct {
	Info zbencode.RawMessage `bencode:"info"`
}

// extractRawInfo returns a copy of the raw info dictionary bytes. Duplicate
// keys are rejected by the decoder, so this is the same entry the model
// was built from.
func extractRawInfo(data []byte) ([]byte, error) {
	var raw rawMetainfo
	if err := zbencode.DecodeBytes(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to extract info dictionary: %w", err)
	}
	if len(raw.Info) == 0 {
		return nil, missingField(keyInfo)
	}
	out := make([]byte, len(raw.Info))
	copy(out, raw.Info)
	return out, nil
}

func hashInfo(rawInfo []byte) InfoHash {
	return InfoHash(sha1.Sum(rawInfo))
}

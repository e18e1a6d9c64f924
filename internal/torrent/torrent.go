package torrent

import (
	"errors"
	"net/url"
	"time"
)

// Torrent represents a parsed torrent file. Optional fields are nil when the
// key was not present.
type Torrent struct {
	CreationDate *time.Time
	Announce     *string
	AnnounceList []string
	CreatedBy    *string
	Comment      *string
	Info         Info

	// SHA-1 of the raw info dictionary
	InfoHash InfoHash

	// info dictionary as decoded, unknown keys included
	rawInfo []byte
}

func (t *Torrent) Validate() error {
	if t.Announce == nil && len(t.AnnounceList) == 0 {
		return errors.New("no announce URLs provided")
	}

	return t.Info.Validate()
}

// Trackers parses announce and every announce-list entry as absolute URLs.
// The primary announce URL comes first and duplicates are dropped.
func (t *Torrent) Trackers() ([]*url.URL, error) {
	var raw []string
	if t.Announce != nil {
		raw = append(raw, *t.Announce)
	}
	raw = append(raw, t.AnnounceList...)

	seen := make(map[string]bool, len(raw))
	var urls []*url.URL
	for i, r := range raw {
		if seen[r] {
			continue
		}
		seen[r] = true

		field := keyAnnounceList
		if i == 0 && t.Announce != nil {
			field = keyAnnounce
		}
		u, err := parseTrackerURL(field, []byte(r))
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

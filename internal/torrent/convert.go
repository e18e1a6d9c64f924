package torrent

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/krywicki/ditto/internal/bencode"
)

// toText decodes a byte string that must hold UTF-8 text.
func toText(field string, v bencode.Value) (string, error) {
	s, ok := v.(bencode.String)
	if !ok {
		return "", invalidType(field, "byte string", v)
	}
	if !utf8.Valid(s) {
		return "", invalidValue(field, "not valid UTF-8")
	}
	return string(s), nil
}

func toInt(field string, v bencode.Value) (int64, error) {
	n, ok := v.(bencode.Int)
	if !ok {
		return 0, invalidType(field, "integer", v)
	}
	return int64(n), nil
}

// toBytes keeps binary data verbatim. The result never aliases the input buffer.
func toBytes(field string, v bencode.Value) ([]byte, error) {
	s, ok := v.(bencode.String)
	if !ok {
		return nil, invalidType(field, "byte string", v)
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}

// toTimestamp converts Unix seconds to a UTC time with no sub-second part.
func toTimestamp(field string, v bencode.Value) (time.Time, error) {
	n, err := toInt(field, v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0).UTC(), nil
}

// toPath joins a list of path segments using the host's separator.
func toPath(field string, v bencode.Value) (string, error) {
	list, ok := v.(bencode.List)
	if !ok {
		return "", invalidType(field, "list", v)
	}
	if len(list) == 0 {
		return "", invalidValue(field, "file path cannot be empty")
	}

	segments := make([]string, 0, len(list))
	for i, item := range list {
		segment, err := toText(field, item)
		if err != nil {
			return "", err
		}
		switch segment {
		case "":
			return "", invalidValue(field, "empty path component at index %d", i)
		case ".", "..":
			return "", invalidValue(field, "invalid path component: %s", segment)
		}
		if strings.ContainsRune(segment, '/') || strings.ContainsRune(segment, filepath.Separator) {
			return "", invalidValue(field, "path separator in component: %s", segment)
		}
		segments = append(segments, segment)
	}

	return filepath.Join(segments...), nil
}

// flattenAnnounceList concatenates the tiers of an announce-list in order.
func flattenAnnounceList(field string, v bencode.Value) ([]string, error) {
	tiers, ok := v.(bencode.List)
	if !ok {
		return nil, invalidType(field, "list", v)
	}

	urls := []string{}
	for _, tierValue := range tiers {
		tier, ok := tierValue.(bencode.List)
		if !ok {
			return nil, invalidType(field, "list", tierValue)
		}
		for _, item := range tier {
			u, err := toText(field, item)
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// parseTrackerURLs accepts a byte string or an arbitrarily nested list of
// byte strings and parses every leaf as an absolute URL.
func parseTrackerURLs(field string, v bencode.Value) ([]*url.URL, error) {
	switch v := v.(type) {
	case bencode.String:
		u, err := parseTrackerURL(field, v)
		if err != nil {
			return nil, err
		}
		return []*url.URL{u}, nil
	case bencode.List:
		var urls []*url.URL
		for _, item := range v {
			switch item.(type) {
			case bencode.String, bencode.List:
			default:
				return nil, invalidType(field, "list or byte string", item)
			}
			nested, err := parseTrackerURLs(field, item)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	default:
		return nil, invalidType(field, "list or byte string", v)
	}
}

func parseTrackerURL(field string, raw []byte) (*url.URL, error) {
	if !utf8.Valid(raw) {
		return nil, invalidValue(field, "tracker url is invalid utf-8")
	}
	u, err := url.Parse(string(raw))
	if err != nil {
		return nil, invalidValue(field, "invalid tracker url %q: %v", raw, err)
	}
	if !u.IsAbs() {
		return nil, invalidValue(field, "tracker url %q is not absolute", raw)
	}
	return u, nil
}

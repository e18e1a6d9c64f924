package torrent

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/krywicki/ditto/internal/bencode"
)

// Dictionary keys as they appear on disk. Matched byte for byte.
const (
	keyAnnounce     = "announce"
	keyAnnounceList = "announce-list"
	keyComment      = "comment"
	keyCreatedBy    = "created by"
	keyCreationDate = "creation date"
	keyInfo         = "info"

	keyName        = "name"
	keyPieces      = "pieces"
	keyPieceLength = "piece length"
	keyLength      = "length"
	keyFiles       = "files"
	keyMD5Sum      = "md5sum"
	keyPath        = "path"
)

// Options tune how strictly a torrent is mapped.
type Options struct {
	// StrictTrackers parses announce and announce-list entries as absolute
	// URLs and fails the decode if any of them is not one.
	StrictTrackers bool
}

// Open reads filename completely and decodes it.
func Open(filename string) (*Torrent, error) {
	return OpenWith(filename, Options{})
}

func OpenWith(filename string, opts Options) (*Torrent, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, ioError(err)
	}
	log.WithFields(log.Fields{"file": filename, "bytes": len(data)}).Debug("read torrent file")

	return ParseTorrentWith(data, opts)
}

func ParseTorrent(data []byte) (*Torrent, error) {
	return ParseTorrentWith(data, Options{})
}

// ParseTorrentWith decodes a complete metainfo buffer. Either the whole
// torrent is returned or an *Error with Kind DecodeFailure.
func ParseTorrentWith(data []byte, opts Options) (*Torrent, error) {
	decoded, err := bencode.Decode(data)
	if err != nil {
		return nil, decodeFailure(fmt.Errorf("failed to decode bencode: %w", err))
	}

	root, ok := decoded.(bencode.Dict)
	if !ok {
		return nil, decodeFailure(invalidType("torrent", "dictionary", decoded))
	}

	torrent, err := parseTorrentFromDict(root, opts)
	if err != nil {
		return nil, decodeFailure(fmt.Errorf("failed to parse torrent structure: %w", err))
	}

	torrent.rawInfo, err = extractRawInfo(data)
	if err != nil {
		return nil, decodeFailure(err)
	}
	torrent.InfoHash = hashInfo(torrent.rawInfo)
	log.WithFields(log.Fields{"name": torrent.Info.Name, "info_hash": torrent.InfoHash}).Debug("decoded torrent")

	return torrent, nil
}

// optionalText maps a missing key to nil rather than "".
func optionalText(d bencode.Dict, key string) (*string, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, nil
	}
	s, err := toText(key, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func optionalInt(d bencode.Dict, key string) (*int64, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, nil
	}
	n, err := toInt(key, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func required(d bencode.Dict, key string) (bencode.Value, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, missingField(key)
	}
	return v, nil
}

func parseTorrentFromDict(d bencode.Dict, opts Options) (*Torrent, error) {
	torrent := &Torrent{}
	var err error

	if v, ok := d.Get(keyCreationDate); ok {
		ts, err := toTimestamp(keyCreationDate, v)
		if err != nil {
			return nil, err
		}
		torrent.CreationDate = &ts
	}

	if v, ok := d.Get(keyAnnounceList); ok {
		if torrent.AnnounceList, err = flattenAnnounceList(keyAnnounceList, v); err != nil {
			return nil, err
		}
		if opts.StrictTrackers {
			if _, err := parseTrackerURLs(keyAnnounceList, v); err != nil {
				return nil, err
			}
		}
	}

	if torrent.CreatedBy, err = optionalText(d, keyCreatedBy); err != nil {
		return nil, err
	}

	if torrent.Announce, err = optionalText(d, keyAnnounce); err != nil {
		return nil, err
	}
	if opts.StrictTrackers && torrent.Announce != nil {
		if _, err := parseTrackerURL(keyAnnounce, []byte(*torrent.Announce)); err != nil {
			return nil, err
		}
	}

	infoValue, err := required(d, keyInfo)
	if err != nil {
		return nil, err
	}
	infoDict, ok := infoValue.(bencode.Dict)
	if !ok {
		return nil, invalidType(keyInfo, "dictionary", infoValue)
	}
	info, err := parseInfoFromDict(infoDict)
	if err != nil {
		return nil, fmt.Errorf("failed to parse info dictionary: %w", err)
	}
	torrent.Info = *info

	if torrent.Comment, err = optionalText(d, keyComment); err != nil {
		return nil, err
	}

	return torrent, nil
}

func parseInfoFromDict(d bencode.Dict) (*Info, error) {
	info := &Info{}

	v, err := required(d, keyName)
	if err != nil {
		return nil, err
	}
	if info.Name, err = toText(keyName, v); err != nil {
		return nil, err
	}

	if v, err = required(d, keyPieces); err != nil {
		return nil, err
	}
	if info.Pieces, err = toBytes(keyPieces, v); err != nil {
		return nil, err
	}

	if v, err = required(d, keyPieceLength); err != nil {
		return nil, err
	}
	if info.PieceLength, err = toInt(keyPieceLength, v); err != nil {
		return nil, err
	}

	if info.MD5Sum, err = optionalText(d, keyMD5Sum); err != nil {
		return nil, err
	}

	if info.Length, err = optionalInt(d, keyLength); err != nil {
		return nil, err
	}

	if v, ok := d.Get(keyFiles); ok {
		list, ok := v.(bencode.List)
		if !ok {
			return nil, invalidType(keyFiles, "list", v)
		}
		info.Files = make([]File, 0, len(list))
		for i, item := range list {
			fileDict, ok := item.(bencode.Dict)
			if !ok {
				return nil, invalidType(keyFiles, "dictionary", item)
			}
			file, err := parseFileFromDict(fileDict)
			if err != nil {
				return nil, fmt.Errorf("failed to parse file %d: %w", i, err)
			}
			info.Files = append(info.Files, *file)
		}
	}

	return info, nil
}

func parseFileFromDict(d bencode.Dict) (*File, error) {
	file := &File{}

	v, err := required(d, keyPath)
	if err != nil {
		return nil, err
	}
	if file.Path, err = toPath(keyPath, v); err != nil {
		return nil, err
	}

	if v, err = required(d, keyLength); err != nil {
		return nil, err
	}
	if file.Length, err = toInt(keyLength, v); err != nil {
		return nil, err
	}

	if file.MD5Sum, err = optionalText(d, keyMD5Sum); err != nil {
		return nil, err
	}

	return file, nil
}

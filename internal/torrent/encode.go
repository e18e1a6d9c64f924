package torrent

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	jbencode "github.com/jackpal/bencode-go"
)

// Marshal writes t back out as a metainfo file. The announce-list is written
// as a single tier since tier boundaries are not kept. A decoded torrent
// writes its info dictionary back byte for byte, so the info hash and any
// keys the model does not carry survive.
func (t *Torrent) Marshal(w io.Writer) error {
	if t.rawInfo == nil {
		dict := t.toDict()
		dict[keyInfo] = t.Info.toDict()
		return jbencode.Marshal(w, dict)
	}

	// "info" sorts after every other top-level key we write, so it goes last.
	var buf bytes.Buffer
	if err := jbencode.Marshal(&buf, t.toDict()); err != nil {
		return err
	}
	out := buf.Bytes()
	out = append(out[:len(out)-1], fmt.Sprintf("%d:%s", len(keyInfo), keyInfo)...)
	out = append(out, t.rawInfo...)
	out = append(out, 'e')

	_, err := w.Write(out)
	return err
}

func (t *Torrent) toDict() map[string]interface{} {
	dict := map[string]interface{}{}
	if t.Announce != nil {
		dict[keyAnnounce] = *t.Announce
	}
	if t.AnnounceList != nil {
		tier := make([]interface{}, len(t.AnnounceList))
		for i, u := range t.AnnounceList {
			tier[i] = u
		}
		dict[keyAnnounceList] = []interface{}{tier}
	}
	if t.Comment != nil {
		dict[keyComment] = *t.Comment
	}
	if t.CreatedBy != nil {
		dict[keyCreatedBy] = *t.CreatedBy
	}
	if t.CreationDate != nil {
		dict[keyCreationDate] = t.CreationDate.Unix()
	}
	return dict
}

func (i *Info) toDict() map[string]interface{} {
	dict := map[string]interface{}{
		keyName:        i.Name,
		keyPieces:      string(i.Pieces),
		keyPieceLength: i.PieceLength,
	}
	if i.Length != nil {
		dict[keyLength] = *i.Length
	}
	if i.MD5Sum != nil {
		dict[keyMD5Sum] = *i.MD5Sum
	}
	if i.Files != nil {
		files := make([]interface{}, len(i.Files))
		for n, f := range i.Files {
			files[n] = f.toDict()
		}
		dict[keyFiles] = files
	}
	return dict
}

func (f *File) toDict() map[string]interface{} {
	segments := strings.Split(filepath.ToSlash(f.Path), "/")
	path := make([]interface{}, len(segments))
	for i, s := range segments {
		path[i] = s
	}

	dict := map[string]interface{}{
		keyPath:   path,
		keyLength: f.Length,
	}
	if f.MD5Sum != nil {
		dict[keyMD5Sum] = *f.MD5Sum
	}
	return dict
}

package torrent

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02 15:04:05"
	margin     = "                    "

	// announce-list entries are indented less than file entries
	announceMargin = "                "
)

// FormatSize renders a byte count with the largest fitting unit. Units are
// binary sized but the thresholds between them step by 1000, so 1024*1000
// bytes is already "1 MiB". Anything below that is reported in KiB.
func FormatSize(size int64) string {
	const (
		KiB int64 = 1024
		MiB       = KiB * 1000
		GiB       = MiB * 1000
		TiB       = GiB * 1000
	)

	switch {
	case size < MiB:
		return fmt.Sprintf("%d KiB", size/KiB)
	case size < GiB:
		return fmt.Sprintf("%d MiB", size/MiB)
	case size < TiB:
		return fmt.Sprintf("%d GiB", size/GiB)
	default:
		return fmt.Sprintf("%d TiB", size/TiB)
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (t *Torrent) files() (int, string) {
	if len(t.Info.Files) == 0 {
		return 1, t.Info.Name
	}

	lines := make([]string, len(t.Info.Files))
	for i, f := range t.Info.Files {
		lines[i] = fmt.Sprintf("[%s] %s", FormatSize(f.Length), f.Path)
	}
	return len(lines), strings.Join(lines, "\n"+margin)
}

// String renders the multi-line summary shown by the command.
func (t *Torrent) String() string {
	var b strings.Builder

	created := time.Unix(0, 0).UTC()
	if t.CreationDate != nil {
		created = t.CreationDate.UTC()
	}

	var announceList strings.Builder
	for _, u := range t.AnnounceList {
		announceList.WriteString("\n" + announceMargin + u)
	}

	numFiles, files := t.files()

	fmt.Fprintf(&b, "name              : %s\n", t.Info.Name)
	fmt.Fprintf(&b, "comment           : %s\n", orEmpty(t.Comment))
	fmt.Fprintf(&b, "creation-date     : %s\n", created.Format(dateLayout))
	fmt.Fprintf(&b, "announce          : %s\n", orEmpty(t.Announce))
	fmt.Fprintf(&b, "announce list     : %s\n", announceList.String())
	fmt.Fprintf(&b, "files %-5s       : %s\n", fmt.Sprintf("(%d)", numFiles), files)

	return b.String()
}

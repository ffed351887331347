package m3u8

import "fmt"

// PlaylistType is the closed EXT-X-PLAYLIST-TYPE enumeration.
type PlaylistType string

// Method is the closed EXT-X-KEY METHOD enumeration.
type Method string

const (
	PlaylistVOD   PlaylistType = "VOD"
	PlaylistEvent PlaylistType = "EVENT"

	CryptNone      Method = "NONE"
	CryptAES       Method = "AES-128"
	CryptSampleAES Method = "SAMPLE-AES"
)

// Key contains information for decrypting encrypted segments
type Key struct { // 4.3.2.4
	Method Method
	URI    string
}

// ByteRange is the LENGTH@OFFSET pair of an EXT-X-BYTERANGE tag.
type ByteRange struct { // 4.3.2.2
	Length uint64
	Offset uint64
}

// Resolution contains the width and
// height of a variant or I-frame stream
type Resolution struct { // 4.3.4.2
	Width  uint64
	Height uint64
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

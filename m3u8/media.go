package m3u8

import (
	"github.com/sirupsen/logrus"
)

// MediaSegment represents an individual
// media segment from a MediaPlaylist
type MediaSegment struct { // 4.3.2
	Duration  float64
	Title     string
	ByteRange *ByteRange // only set in I-frame playlists
	URI       string
}

// MediaPlaylist represents a MediaPlaylist M3U8 file
type MediaPlaylist struct { // 4.3.3
	Version        uint64
	MediaSequence  uint64
	Key            *Key
	AllowCache     bool // defaults to true
	TargetDuration uint64
	PlaylistType   PlaylistType // defaults to EVENT
	IFramesOnly    bool
	Segments       []MediaSegment
}

// Type returns media playlist type
func (m *MediaPlaylist) Type() int {
	return TypeMedia
}

// Count returns the number of segments
func (m *MediaPlaylist) Count() int {
	return len(m.Segments)
}

// Duration returns the sum of all segment durations in seconds.
func (m *MediaPlaylist) Duration() (total float64) {
	for _, s := range m.Segments {
		total += s.Duration
	}
	return
}

// Current returns the most recently appended segment.
func (m *MediaPlaylist) Current() (s MediaSegment, ok bool) {
	if len(m.Segments) == 0 {
		return
	}
	return m.Segments[len(m.Segments)-1], true
}

type mediaParser struct {
	c           *cursor
	log         logrus.FieldLogger
	playlist    *MediaPlaylist
	iframesOnly bool
	pending     *ByteRange // EXT-X-BYTERANGE seen before its EXTINF
}

// ParseMedia parses input as a Media Playlist. Unknown tags are ignored.
// The first error aborts the parse and no playlist is returned.
func ParseMedia(input string, opts ...Option) (*MediaPlaylist, error) {
	o := newOptions(opts)
	p := &mediaParser{
		c:   newCursor(input),
		log: o.log,
		playlist: &MediaPlaylist{
			AllowCache:   true,
			PlaylistType: PlaylistEvent,
		},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.playlist, nil
}

func (p *mediaParser) parse() error {
	for {
		t, err := p.c.next()
		if err != nil {
			return err
		}

		switch t.Kind {
		case TokenEOF, TokenEndList: // 4.3.3.4
			return nil
		case TokenVersion: // 4.3.1.2
			p.playlist.Version, err = p.uint(t.Kind.String())
		case TokenMediaSequence: // 4.3.3.2
			p.playlist.MediaSequence, err = p.uint(t.Kind.String())
		case TokenTargetDuration: // 4.3.3.1
			p.playlist.TargetDuration, err = p.uint(t.Kind.String())
		case TokenAllowCache:
			var v Token
			if v, err = p.c.enum(t.Kind.String(), TokenColon, TokenBoolValue); err == nil {
				p.playlist.AllowCache = v.Bool
			}
		case TokenPlaylistType: // 4.3.3.5
			var v Token
			if v, err = p.c.enum(t.Kind.String(), TokenColon, TokenTypeValue); err == nil {
				p.playlist.PlaylistType = v.Type
			}
		case TokenIFramesOnly: // 4.3.3.6
			p.iframesOnly = true
			p.playlist.IFramesOnly = true
		case TokenKey: // 4.3.2.4
			err = p.parseKey(t)
		case TokenByteRange: // 4.3.2.2
			p.pending, err = p.byteRange(t)
		case TokenInf: // 4.3.2.1
			err = p.parseSegment(t)
		}

		if err != nil {
			return err
		}
	}
}

func (p *mediaParser) uint(field string) (uint64, error) {
	v, err := p.c.value(field, TokenColon, TokenInteger)
	if err != nil {
		return 0, err
	}
	return uintValue(field, v)
}

func (p *mediaParser) parseKey(tag Token) error {
	const field = "EXT-X-KEY"
	if t, ok, err := p.c.expect(TokenColon); err != nil {
		return err
	} else if !ok {
		return missing(field+" METHOD", t)
	}

	var (
		key    Key
		hasURI bool
	)
	for {
		t, err := p.c.peek(0)
		if err != nil {
			return err
		}
		if t.Kind == TokenEOF || t.Line != tag.Line {
			break
		}
		if _, err = p.c.next(); err != nil {
			return err
		}

		switch {
		case t.Kind == TokenComma:
		case t.Kind == TokenMethodKey:
			var v Token
			if v, err = p.c.enum(field+" METHOD", TokenEquals, TokenMethodValue); err == nil {
				key.Method = v.Method
			}
		case t.Kind == TokenURIKey:
			var v Token
			if v, err = p.c.value(field+" URI", TokenEquals, TokenString); err == nil {
				key.URI, hasURI = v.Text, true
			}
		case t.Kind.IsKey():
			err = ignoreAttribute(p.c, p.log, field, t)
		default:
			err = unexpected(field, t, ErrUnexpectedToken)
		}
		if err != nil {
			return err
		}
	}

	if key.Method == "" {
		return fieldErr(field+" METHOD", tag, ErrMissingValue)
	}
	if key.Method != CryptNone && !hasURI {
		return fieldErr(field+" URI", tag, ErrMissingValue)
	}
	p.playlist.Key = &key
	return nil
}

// byteRange reads the value of an EXT-X-BYTERANGE tag. A range is only
// returned once EXT-X-I-FRAMES-ONLY has been seen; a missing, malformed or
// out of range value is skipped rather than reported.
func (p *mediaParser) byteRange(tag Token) (*ByteRange, error) {
	sep, err := p.c.peek(0)
	if err != nil {
		return nil, err
	}
	v, err := p.c.peek(1)
	if err != nil {
		return nil, err
	}

	var r *ByteRange
	if p.iframesOnly && sep.Kind == TokenColon && v.Kind == TokenRangeValue && v.Line == tag.Line {
		if length, offset, err := pairValue(tag.Kind.String(), v); err == nil {
			r = &ByteRange{Length: length, Offset: offset}
		}
	}
	return r, p.c.skipLine(tag.Line)
}

func (p *mediaParser) parseSegment(tag Token) error {
	d, err := p.c.value("EXTINF duration", TokenColon, TokenFloat, TokenInteger)
	if err != nil {
		return err
	}

	var segment MediaSegment
	if segment.Duration, err = floatValue("EXTINF duration", d); err != nil {
		return err
	}
	if _, _, err = p.c.expect(TokenComma); err != nil {
		return err
	}
	if segment.Title, err = p.c.restOfLine(tag.Line); err != nil {
		return err
	}
	segment.ByteRange, p.pending = p.pending, nil

	for {
		t, err := p.c.peek(0)
		if err != nil {
			return err
		}

		switch t.Kind {
		case TokenURI:
			if _, err = p.c.next(); err != nil {
				return err
			}
			segment.URI = t.Text
			p.playlist.Segments = append(p.playlist.Segments, segment)
			return nil
		case TokenByteRange:
			if _, err = p.c.next(); err != nil {
				return err
			}
			r, err := p.byteRange(t)
			if err != nil {
				return err
			}
			if r != nil {
				segment.ByteRange = r
			}
		case TokenKey:
			if _, err = p.c.next(); err != nil {
				return err
			}
			if err = p.parseKey(t); err != nil {
				return err
			}
		case TokenUnknownTag:
			if _, err = p.c.next(); err != nil {
				return err
			}
			if err = p.c.skipLine(t.Line); err != nil {
				return err
			}
		default:
			// Any other known tag before the URI leaves the segment incomplete.
			return missing("EXTINF URI", t)
		}
	}
}

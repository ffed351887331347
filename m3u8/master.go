package m3u8

import (
	"github.com/sirupsen/logrus"
)

// VariantStream represents the EXT-X-STREAM-INF type
type VariantStream struct { // 4.3.4.2
	ProgramID  *uint64 // Removed in Protocol 6
	Bandwidth  uint64
	Resolution Resolution
	FrameRate  float64 // zero when absent
	Codecs     string  // empty when absent
	URI        string
}

// FrameStream represents the EXT-X-I-FRAME-STREAM-INF type
type FrameStream struct { // 4.3.4.3
	Bandwidth  uint64
	Resolution Resolution
	Codecs     string
	URI        string
}

// MultiVariantPlaylist represents a Multi-Variant (master) Playlist M3U8 file
type MultiVariantPlaylist struct { // 4.3.4
	Variants     []VariantStream
	FrameStreams []FrameStream
}

// Type returns multi-variant playlist type
func (m *MultiVariantPlaylist) Type() int {
	return TypeMultiVariant
}

// Count returns the number of variant and I-frame streams
func (m *MultiVariantPlaylist) Count() int {
	return len(m.Variants) + len(m.FrameStreams)
}

type multiVariantParser struct {
	c        *cursor
	log      logrus.FieldLogger
	playlist *MultiVariantPlaylist
}

// ParseMultiVariant parses input as a Multi-Variant Playlist. Tags other than
// EXT-X-STREAM-INF and EXT-X-I-FRAME-STREAM-INF are ignored.
func ParseMultiVariant(input string, opts ...Option) (*MultiVariantPlaylist, error) {
	o := newOptions(opts)
	p := &multiVariantParser{
		c:        newCursor(input),
		log:      o.log,
		playlist: new(MultiVariantPlaylist),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.playlist, nil
}

func (p *multiVariantParser) parse() error {
	for {
		t, err := p.c.next()
		if err != nil {
			return err
		}

		switch t.Kind {
		case TokenEOF:
			return nil
		case TokenStreamInf:
			var v VariantStream
			if v, err = p.parseVariant(t); err == nil {
				p.playlist.Variants = append(p.playlist.Variants, v)
			}
		case TokenIFrameStreamInf:
			var f FrameStream
			if f, err = p.parseFrameStream(t); err == nil {
				p.playlist.FrameStreams = append(p.playlist.FrameStreams, f)
			}
		}

		if err != nil {
			return err
		}
	}
}

// parseVariant reads the attribute list of an EXT-X-STREAM-INF tag up to
// and including the URI line that follows it.
func (p *multiVariantParser) parseVariant(tag Token) (stream VariantStream, err error) {
	const field = "EXT-X-STREAM-INF"
	var hasBandwidth bool

	for {
		t, err := p.c.next()
		if err != nil {
			return stream, err
		}

		switch t.Kind {
		case TokenColon, TokenEquals, TokenComma:
		case TokenProgramIDKey:
			// Best effort; a malformed PROGRAM-ID leaves it unset.
			v, err := p.c.value(field+" PROGRAM-ID", TokenEquals, TokenInteger, TokenFloat, TokenWord, TokenString)
			if err == nil && v.Kind == TokenInteger && v.Err == nil {
				id := v.Uint
				stream.ProgramID = &id
			}
		case TokenBandwidthKey:
			if stream.Bandwidth, err = p.uint(field + " BANDWIDTH"); err != nil {
				return stream, err
			}
			hasBandwidth = true
		case TokenResolutionKey:
			if stream.Resolution, err = p.resolution(field + " RESOLUTION"); err != nil {
				return stream, err
			}
		case TokenFrameRateKey:
			v, err := p.c.value(field+" FRAME-RATE", TokenEquals, TokenFloat, TokenInteger)
			if err != nil {
				return stream, err
			}
			if stream.FrameRate, err = floatValue(field+" FRAME-RATE", v); err != nil {
				return stream, err
			}
		case TokenCodecsKey:
			v, err := p.c.value(field+" CODECS", TokenEquals, TokenString)
			if err != nil {
				return stream, err
			}
			stream.Codecs = v.Text
		case TokenURI:
			if !hasBandwidth {
				return stream, fieldErr(field+" BANDWIDTH", tag, ErrMissingValue)
			}
			stream.URI = t.Text
			return stream, nil
		case TokenEOF:
			return stream, missing(field+" URI", t)
		default:
			if t.Kind.IsKey() && t.Line == tag.Line {
				if err = ignoreAttribute(p.c, p.log, field, t); err != nil {
					return stream, err
				}
				continue
			}
			return stream, unexpected(field, t, ErrInvalidVariantStream)
		}
	}
}

// parseFrameStream reads the attribute list of an EXT-X-I-FRAME-STREAM-INF
// tag. The tag ends with its line; URI is an attribute rather than a line.
func (p *multiVariantParser) parseFrameStream(tag Token) (stream FrameStream, err error) {
	const field = "EXT-X-I-FRAME-STREAM-INF"
	var hasBandwidth, hasCodecs, hasURI bool

	for {
		t, err := p.c.peek(0)
		if err != nil {
			return stream, err
		}
		if t.Kind == TokenEOF || t.Line != tag.Line {
			break
		}
		if _, err = p.c.next(); err != nil {
			return stream, err
		}

		switch t.Kind {
		case TokenColon, TokenEquals, TokenComma:
		case TokenBandwidthKey:
			if stream.Bandwidth, err = p.uint(field + " BANDWIDTH"); err != nil {
				return stream, err
			}
			hasBandwidth = true
		case TokenResolutionKey:
			if stream.Resolution, err = p.resolution(field + " RESOLUTION"); err != nil {
				return stream, err
			}
		case TokenCodecsKey:
			v, err := p.c.value(field+" CODECS", TokenEquals, TokenString)
			if err != nil {
				return stream, err
			}
			stream.Codecs, hasCodecs = v.Text, true
		case TokenURIKey:
			v, err := p.c.value(field+" URI", TokenEquals, TokenString)
			if err != nil {
				return stream, err
			}
			stream.URI, hasURI = v.Text, true
		default:
			if t.Kind.IsKey() {
				if err = ignoreAttribute(p.c, p.log, field, t); err != nil {
					return stream, err
				}
				continue
			}
			return stream, unexpected(field, t, ErrInvalidFrameStream)
		}
	}

	switch {
	case !hasBandwidth:
		return stream, fieldErr(field+" BANDWIDTH", tag, ErrMissingValue)
	case !hasCodecs:
		return stream, fieldErr(field+" CODECS", tag, ErrMissingValue)
	case !hasURI:
		return stream, fieldErr(field+" URI", tag, ErrMissingValue)
	}
	return stream, nil
}

func (p *multiVariantParser) uint(field string) (uint64, error) {
	v, err := p.c.value(field, TokenEquals, TokenInteger)
	if err != nil {
		return 0, err
	}
	return uintValue(field, v)
}

func (p *multiVariantParser) resolution(field string) (Resolution, error) {
	v, err := p.c.value(field, TokenEquals, TokenResolutionValue)
	if err != nil {
		return Resolution{}, err
	}
	w, h, err := pairValue(field, v)
	return Resolution{Width: w, Height: h}, err
}

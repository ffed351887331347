package m3u8

import (
	"fmt"
	"io"
)

const (
	// TypeMultiVariant and TypeMedia are returned from
	// Playlist.Type to let callers tell the two documents apart
	TypeMultiVariant = iota
	TypeMedia
)

// Playlist represents an interface that
// MultiVariantPlaylist and MediaPlaylist fall under
type Playlist interface {
	Type() int
	Count() int
}

// detect reports whether input is a multi-variant playlist. The first tag
// must be EXTM3U. Stream tags mark a multi-variant playlist; media tags
// or the absence of either mark a media playlist.
func detect(input string) (multiVariant bool, err error) {
	lex := NewLexer(input)
	first, err := lex.Next()
	if err != nil {
		return false, err
	}
	if first.Kind != TokenM3U {
		return false, ErrHeader
	}

	for {
		t, err := lex.Next()
		if err != nil {
			return false, err
		}
		switch t.Kind {
		case TokenEOF:
			return false, nil
		case TokenStreamInf, TokenIFrameStreamInf:
			return true, nil
		// 4.3.3 - "A Media Playlist tag MUST NOT appear in a Master Playlist."
		case TokenTargetDuration, TokenInf, TokenMediaSequence, TokenPlaylistType, TokenIFramesOnly, TokenEndList:
			return false, nil
		}
	}
}

// Decode determines the playlist type of input and parses it. Use a type
// switch or Type to get at the concrete playlist.
func Decode(input string, opts ...Option) (playlist Playlist, err error) {
	multiVariant, err := detect(input)
	if err != nil {
		return nil, fmt.Errorf("detecting playlist type: %w", err)
	}

	if multiVariant {
		if playlist, err = ParseMultiVariant(input, opts...); err != nil {
			return nil, fmt.Errorf("parsing multi-variant playlist: %w", err)
		}
		return playlist, nil
	}
	if playlist, err = ParseMedia(input, opts...); err != nil {
		return nil, fmt.Errorf("parsing media playlist: %w", err)
	}
	return playlist, nil
}

// DecodeReader buffers all of reader and passes it to Decode.
func DecodeReader(reader io.Reader, opts ...Option) (Playlist, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}
	return Decode(string(b), opts...)
}

// MustDecode implements Decode, but panics if an error occurs
func MustDecode(input string, opts ...Option) Playlist {
	playlist, err := Decode(input, opts...)
	if err != nil {
		panic(err)
	}
	return playlist
}

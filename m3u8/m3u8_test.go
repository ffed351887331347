package m3u8

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// got most of these tests from https://github.com/globocom/m3u8/blob/master/tests/playlists.py

func quietLogger() logrus.FieldLogger {
	log, _ := logtest.NewNullLogger()
	return log
}

func makeMediaPlaylist(str string, count int, t *testing.T) *MediaPlaylist {
	playlist, err := Decode(str, WithLogger(quietLogger()))
	require.NoError(t, err, "decoding playlist")
	assert.Equal(t, TypeMedia, playlist.Type())
	assert.Equal(t, count, playlist.Count())
	return playlist.(*MediaPlaylist)
}

func TestSimpleMediaPlaylist(t *testing.T) {
	playlist := makeMediaPlaylist(`
		#EXTM3U
		#EXT-X-TARGETDURATION:5220
		#EXTINF:5220,
		http://media.example.com/entire.ts
		#EXT-X-ENDLIST
	`, 1, t)

	seg := playlist.Segments[0]
	assert.EqualValues(t, 5220, playlist.TargetDuration)
	assert.EqualValues(t, 5220, seg.Duration)
	assert.Equal(t, "http://media.example.com/entire.ts", seg.URI)
}

func TestMediaPlaylistShortDuration(t *testing.T) {
	playlist := makeMediaPlaylist(`
		#EXTM3U
		#EXT-X-TARGETDURATION:5220
		#EXTINF:5220,
		http://media.example.com/entire1.ts
		#EXTINF:5218.5,
		http://media.example.com/entire2.ts
		#EXTINF:0.000011,
		http://media.example.com/entire3.ts
		#EXT-X-ENDLIST
	`, 3, t)

	assert.EqualValues(t, 5220, playlist.TargetDuration)

	seg1 := playlist.Segments[0]
	assert.EqualValues(t, 5220, seg1.Duration)
	assert.Equal(t, "http://media.example.com/entire1.ts", seg1.URI)

	seg2 := playlist.Segments[1]
	assert.EqualValues(t, 5218.5, seg2.Duration)
	assert.Equal(t, "http://media.example.com/entire2.ts", seg2.URI)

	seg3 := playlist.Segments[2]
	assert.Equal(t, 0.000011, seg3.Duration)
	assert.Equal(t, "http://media.example.com/entire3.ts", seg3.URI)

	assert.InDelta(t, 10438.500011, playlist.Duration(), 1e-9)
}

func TestMediaPlaylistStartIgnored(t *testing.T) {
	playlist := makeMediaPlaylist(`
		#EXTM3U
		#EXT-X-TARGETDURATION:5220
		#EXT-X-START:TIME-OFFSET=-2.0,PRECISE=YES
		#EXTINF:5220,
		http://media.example.com/entire.ts
		#EXT-X-ENDLIST
	`, 1, t)

	assert.EqualValues(t, 5220, playlist.TargetDuration)
	seg := playlist.Segments[0]
	assert.EqualValues(t, 5220, seg.Duration)
	assert.Equal(t, "http://media.example.com/entire.ts", seg.URI)
}

func TestMediaPlaylistEncryptedSegments(t *testing.T) {
	playlist := makeMediaPlaylist(`
		#EXTM3U
		#EXT-X-MEDIA-SEQUENCE:7794
		#EXT-X-TARGETDURATION:15
		#EXT-X-KEY:METHOD=AES-128,URI="https://priv.example.com/key.php?r=52"
		#EXTINF:15,
		http://media.example.com/fileSequence52-1.ts
		#EXTINF:15,
		http://media.example.com/fileSequence52-2.ts
		#EXTINF:15,
		http://media.example.com/fileSequence52-3.ts
	`, 3, t)

	assert := assert.New(t)
	assert.EqualValues(7794, playlist.MediaSequence)
	assert.EqualValues(15, playlist.TargetDuration)
	assert.Equal(&Key{Method: CryptAES, URI: "https://priv.example.com/key.php?r=52"}, playlist.Key)

	segments := []MediaSegment{
		{Duration: 15, URI: "http://media.example.com/fileSequence52-1.ts"},
		{Duration: 15, URI: "http://media.example.com/fileSequence52-2.ts"},
		{Duration: 15, URI: "http://media.example.com/fileSequence52-3.ts"},
	}
	assert.Equal(segments, playlist.Segments)
}

func makeMultiVariantPlaylist(str string, count int, t *testing.T) *MultiVariantPlaylist {
	playlist, err := Decode(str, WithLogger(quietLogger()))
	require.NoError(t, err, "decoding playlist")
	assert.Equal(t, TypeMultiVariant, playlist.Type())
	assert.Equal(t, count, playlist.Count())
	return playlist.(*MultiVariantPlaylist)
}

func programID(id uint64) *uint64 {
	return &id
}

func TestMultiVariantPlaylistSimple(t *testing.T) {
	playlist := makeMultiVariantPlaylist(`
		#EXTM3U
		#EXT-X-STREAM-INF:PROGRAM-ID=1, BANDWIDTH=1280000
		http://example.com/low.m3u8
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=2560000
		http://example.com/mid.m3u8
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=7680000
		http://example.com/hi.m3u8
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=65000,CODECS="mp4a.40.5,avc1.42801e"
		http://example.com/audio-only.m3u8
	`, 4, t)

	variants := []VariantStream{
		{URI: "http://example.com/low.m3u8", Bandwidth: 1280000, ProgramID: programID(1)},
		{URI: "http://example.com/mid.m3u8", Bandwidth: 2560000, ProgramID: programID(1)},
		{URI: "http://example.com/hi.m3u8", Bandwidth: 7680000, ProgramID: programID(1)},
		{URI: "http://example.com/audio-only.m3u8", Bandwidth: 65000, Codecs: "mp4a.40.5,avc1.42801e", ProgramID: programID(1)},
	}
	assert.Equal(t, variants, playlist.Variants)
}

func TestMultiVariantPlaylistCCVideoAudioSubs(t *testing.T) {
	playlist := makeMultiVariantPlaylist(`
		#EXTM3U
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=7680000,CLOSED-CAPTIONS="cc",SUBTITLES="sub",AUDIO="aud",VIDEO="vid"
		http://example.com/with-cc-hi.m3u8
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=65000,CLOSED-CAPTIONS=NONE,SUBTITLES="sub",AUDIO="aud",VIDEO="vid"
		http://example.com/with-cc-low.m3u8
	`, 2, t)

	variants := []VariantStream{
		{URI: "http://example.com/with-cc-hi.m3u8", Bandwidth: 7680000, ProgramID: programID(1)},
		{URI: "http://example.com/with-cc-low.m3u8", Bandwidth: 65000, ProgramID: programID(1)},
	}
	assert.Equal(t, variants, playlist.Variants)
}

func TestMultiVariantPlaylistAvgBandwidth(t *testing.T) {
	playlist := makeMultiVariantPlaylist(`
		#EXTM3U
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=1280000,AVERAGE-BANDWIDTH=1252345
		http://example.com/low.m3u8
		#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=2560000,AVERAGE-BANDWIDTH=2466570
		http://example.com/mid.m3u8
	`, 2, t)

	variants := []VariantStream{
		{URI: "http://example.com/low.m3u8", Bandwidth: 1280000, ProgramID: programID(1)},
		{URI: "http://example.com/mid.m3u8", Bandwidth: 2560000, ProgramID: programID(1)},
	}
	assert.Equal(t, variants, playlist.Variants)
}

func TestDecodeRequiresHeader(t *testing.T) {
	_, err := Decode("#EXT-X-TARGETDURATION:10\n#EXTINF:10,\nhttp://example.com/a.ts\n")
	assert.ErrorIs(t, err, ErrHeader)

	_, err = Decode("")
	assert.ErrorIs(t, err, ErrHeader)
}

func TestDecodeEmptyMediaPlaylist(t *testing.T) {
	playlist := makeMediaPlaylist("#EXTM3U\n", 0, t)
	assert.Empty(t, playlist.Segments)
	_, ok := playlist.Current()
	assert.False(t, ok)
}

func TestDecodeWrapsParseErrors(t *testing.T) {
	_, err := Decode("#EXTM3U\n#EXT-X-PLAYLIST-TYPE:FOO\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(), "parsing media playlist")

	_, err = Decode("#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1\n#EXT-X-ENDLIST\n")
	assert.ErrorIs(t, err, ErrInvalidVariantStream)
	assert.Contains(t, err.Error(), "parsing multi-variant playlist")
}

func TestDecodeReader(t *testing.T) {
	playlist, err := DecodeReader(strings.NewReader("#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1\nlow.m3u8\n"))
	require.NoError(t, err)
	assert.Equal(t, TypeMultiVariant, playlist.Type())
	assert.Equal(t, "low.m3u8", playlist.(*MultiVariantPlaylist).Variants[0].URI)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeReaderError(t *testing.T) {
	_, err := DecodeReader(failingReader{})
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestMustDecode(t *testing.T) {
	assert.Panics(t, func() { MustDecode("not a playlist") })
	assert.NotPanics(t, func() { MustDecode("#EXTM3U\n#EXTINF:1,\na.ts\n") })
}

/*
Package m3u8 parses HLS playlists (RFC 8216) into typed structures.

Parsing happens in two stages. A Lexer turns the whole document into a
stream of classified tokens, and ParseMedia or ParseMultiVariant walk that
stream with a small lookahead, dispatching on tags. Decode picks the right
parser for you.

Lexical classes, tried in this order for each unquoted run:

	#EXT...                 tag (known tags get their own kind, others TokenUnknownTag)
	# anything else         comment, skipped
	line not starting '#'   bare URI (relative or absolute)
	http(s)://...           bare URI anywhere on a line
	"..."                   quoted string, quotes removed
	METHOD URI PROGRAM-ID   attribute keys
	BANDWIDTH RESOLUTION
	FRAME-RATE CODECS
	NAME=                   any other attribute key
	AES-128 SAMPLE-AES NONE encryption method
	YES NO                  boolean
	VOD EVENT               playlist type
	1316@376                byte range, LENGTH@OFFSET
	1280x720                resolution, WIDTHxHEIGHT
	6.006                   decimal float
	17                      decimal integer
	anything else           word (enumerated string, title text, signed number)

Invalid UTF-8, control characters and unterminated quoted strings are
reported as *LexError and end the parse.

Every other failure is a *FieldError naming the tag or attribute being
read. Its Err is ErrMissingValue, ErrInvalidEnum, ErrUnexpectedToken,
ErrInvalidVariantStream, ErrInvalidFrameStream or a *strconv.NumError.

Unknown tags are ignored. Unknown attributes inside EXT-X-KEY,
EXT-X-STREAM-INF and EXT-X-I-FRAME-STREAM-INF are logged at warn level
and skipped.

Byte ranges are only attached to segments of playlists that declared
EXT-X-I-FRAMES-ONLY before the segment; elsewhere EXT-X-BYTERANGE is read
and dropped.
*/
package m3u8

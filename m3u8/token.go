package m3u8

// TokenKind identifies the class of a lexed token.
type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Tags
	TokenM3U             // #EXTM3U
	TokenEndList         // #EXT-X-ENDLIST
	TokenTargetDuration  // #EXT-X-TARGETDURATION
	TokenVersion         // #EXT-X-VERSION
	TokenMediaSequence   // #EXT-X-MEDIA-SEQUENCE
	TokenKey             // #EXT-X-KEY
	TokenAllowCache      // #EXT-X-ALLOW-CACHE
	TokenPlaylistType    // #EXT-X-PLAYLIST-TYPE
	TokenIFramesOnly     // #EXT-X-I-FRAMES-ONLY
	TokenInf             // #EXTINF
	TokenByteRange       // #EXT-X-BYTERANGE
	TokenStreamInf       // #EXT-X-STREAM-INF
	TokenIFrameStreamInf // #EXT-X-I-FRAME-STREAM-INF
	TokenUnknownTag      // any other #EXT tag

	// Attribute keys
	TokenMethodKey     // METHOD
	TokenURIKey        // URI
	TokenProgramIDKey  // PROGRAM-ID
	TokenBandwidthKey  // BANDWIDTH
	TokenResolutionKey // RESOLUTION
	TokenFrameRateKey  // FRAME-RATE
	TokenCodecsKey     // CODECS
	TokenUnknownKey    // any other NAME followed by '='

	// Punctuation
	TokenEquals // =
	TokenComma  // ,
	TokenColon  // :

	// Literals
	TokenFloat           // 6.006
	TokenInteger         // 17
	TokenString          // "quoted"
	TokenMethodValue     // AES-128, SAMPLE-AES, NONE
	TokenBoolValue       // YES, NO
	TokenRangeValue      // 1316@376
	TokenTypeValue       // VOD, EVENT
	TokenResolutionValue // 1280x720
	TokenURI             // bare URI line
	TokenWord            // any other unquoted run
)

var tokenNames = map[TokenKind]string{
	TokenEOF:             "EOF",
	TokenM3U:             "EXTM3U",
	TokenEndList:         "EXT-X-ENDLIST",
	TokenTargetDuration:  "EXT-X-TARGETDURATION",
	TokenVersion:         "EXT-X-VERSION",
	TokenMediaSequence:   "EXT-X-MEDIA-SEQUENCE",
	TokenKey:             "EXT-X-KEY",
	TokenAllowCache:      "EXT-X-ALLOW-CACHE",
	TokenPlaylistType:    "EXT-X-PLAYLIST-TYPE",
	TokenIFramesOnly:     "EXT-X-I-FRAMES-ONLY",
	TokenInf:             "EXTINF",
	TokenByteRange:       "EXT-X-BYTERANGE",
	TokenStreamInf:       "EXT-X-STREAM-INF",
	TokenIFrameStreamInf: "EXT-X-I-FRAME-STREAM-INF",
	TokenUnknownTag:      "TAG",
	TokenMethodKey:       "METHOD",
	TokenURIKey:          "URI",
	TokenProgramIDKey:    "PROGRAM-ID",
	TokenBandwidthKey:    "BANDWIDTH",
	TokenResolutionKey:   "RESOLUTION",
	TokenFrameRateKey:    "FRAME-RATE",
	TokenCodecsKey:       "CODECS",
	TokenUnknownKey:      "KEY",
	TokenEquals:          "=",
	TokenComma:           ",",
	TokenColon:           ":",
	TokenFloat:           "FLOAT",
	TokenInteger:         "INTEGER",
	TokenString:          "STRING",
	TokenMethodValue:     "METHOD-VALUE",
	TokenBoolValue:       "BOOL",
	TokenRangeValue:      "BYTERANGE-VALUE",
	TokenTypeValue:       "PLAYLIST-TYPE-VALUE",
	TokenResolutionValue: "RESOLUTION-VALUE",
	TokenURI:             "URI-LINE",
	TokenWord:            "WORD",
}

// String returns the tag or keyword text for fixed kinds and a
// class name for literal kinds.
func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTag reports whether k is a tag, known or not.
func (k TokenKind) IsTag() bool {
	return k >= TokenM3U && k <= TokenUnknownTag
}

// IsKey reports whether k names an attribute, known or not.
func (k TokenKind) IsKey() bool {
	return k >= TokenMethodKey && k <= TokenUnknownKey
}

var tagKinds = map[string]TokenKind{
	"#EXTM3U":                   TokenM3U,
	"#EXT-X-ENDLIST":            TokenEndList,
	"#EXT-X-TARGETDURATION":     TokenTargetDuration,
	"#EXT-X-VERSION":            TokenVersion,
	"#EXT-X-MEDIA-SEQUENCE":     TokenMediaSequence,
	"#EXT-X-KEY":                TokenKey,
	"#EXT-X-ALLOW-CACHE":        TokenAllowCache,
	"#EXT-X-PLAYLIST-TYPE":      TokenPlaylistType,
	"#EXT-X-I-FRAMES-ONLY":      TokenIFramesOnly,
	"#EXTINF":                   TokenInf,
	"#EXT-X-BYTERANGE":          TokenByteRange,
	"#EXT-X-STREAM-INF":         TokenStreamInf,
	"#EXT-X-I-FRAME-STREAM-INF": TokenIFrameStreamInf,
}

var keyKinds = map[string]TokenKind{
	"METHOD":     TokenMethodKey,
	"URI":        TokenURIKey,
	"PROGRAM-ID": TokenProgramIDKey,
	"BANDWIDTH":  TokenBandwidthKey,
	"RESOLUTION": TokenResolutionKey,
	"FRAME-RATE": TokenFrameRateKey,
	"CODECS":     TokenCodecsKey,
}

// Token is a single lexed unit. Composite literals carry their decoded
// value; a numeric literal that overflows keeps the conversion error in
// Err so the parser can attribute it to the field being read.
type Token struct {
	Kind TokenKind
	Text string // raw text; quoted strings exclude the quotes
	Line int    // 1-based
	Col  int    // 1-based, in bytes
	Pos  int    // byte offset of the first byte
	End  int    // byte offset past the last byte

	Uint   uint64 // TokenInteger; first half of range and resolution pairs
	Uint2  uint64 // second half of range and resolution pairs
	Float  float64
	Method Method
	Bool   bool
	Type   PlaylistType
	Err    error
}

// Is reports whether t has kind k.
func (t Token) Is(k TokenKind) bool {
	return t.Kind == k
}

// Package hls reports on parsed HLS playlists.
package hls

import (
	"sort"

	"github.com/turtletowerz/hlsparse/m3u8"
)

// Kind names used in Summary.Kind
const (
	KindMedia        = "media"
	KindMultiVariant = "multi-variant"
)

// Summary is a compact description of a parsed playlist.
type Summary struct {
	Kind string `json:"kind"`

	// Media playlists
	Segments       int     `json:"segments,omitempty"`
	Duration       float64 `json:"duration,omitempty"`
	TargetDuration uint64  `json:"targetDuration,omitempty"`
	PlaylistType   string  `json:"playlistType,omitempty"`
	Encryption     string  `json:"encryption,omitempty"`
	IFramesOnly    bool    `json:"iframesOnly,omitempty"`

	// Multi-variant playlists
	Variants     int      `json:"variants,omitempty"`
	FrameStreams int      `json:"frameStreams,omitempty"`
	MinBandwidth uint64   `json:"minBandwidth,omitempty"`
	MaxBandwidth uint64   `json:"maxBandwidth,omitempty"`
	Resolutions  []string `json:"resolutions,omitempty"` // lowest first
}

// Summarize describes playlist. It returns the zero Summary for a nil or
// unknown playlist.
func Summarize(playlist m3u8.Playlist) Summary {
	switch p := playlist.(type) {
	case *m3u8.MediaPlaylist:
		if p != nil {
			return summarizeMedia(p)
		}
	case *m3u8.MultiVariantPlaylist:
		if p != nil {
			return summarizeMultiVariant(p)
		}
	}
	return Summary{}
}

func summarizeMedia(p *m3u8.MediaPlaylist) Summary {
	s := Summary{
		Kind:           KindMedia,
		Segments:       p.Count(),
		Duration:       p.Duration(),
		TargetDuration: p.TargetDuration,
		PlaylistType:   string(p.PlaylistType),
		IFramesOnly:    p.IFramesOnly,
	}
	if p.Key != nil {
		s.Encryption = string(p.Key.Method)
	}
	return s
}

func summarizeMultiVariant(p *m3u8.MultiVariantPlaylist) Summary {
	s := Summary{
		Kind:         KindMultiVariant,
		Variants:     len(p.Variants),
		FrameStreams: len(p.FrameStreams),
	}

	variants := make([]m3u8.VariantStream, len(p.Variants))
	copy(variants, p.Variants)
	sort.SliceStable(variants, func(i, j int) bool { return variants[i].Resolution.Height < variants[j].Resolution.Height })

	seen := make(map[m3u8.Resolution]bool)
	for i, v := range variants {
		if i == 0 || v.Bandwidth < s.MinBandwidth {
			s.MinBandwidth = v.Bandwidth
		}
		if v.Bandwidth > s.MaxBandwidth {
			s.MaxBandwidth = v.Bandwidth
		}
		if v.Resolution == (m3u8.Resolution{}) || seen[v.Resolution] {
			continue
		}
		seen[v.Resolution] = true
		s.Resolutions = append(s.Resolutions, v.Resolution.String())
	}
	return s
}

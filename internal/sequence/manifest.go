package sequence

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one frame in the output manifest.
type ManifestEntry struct {
	Index  int     `json:"index"`
	TimeMS float64 `json:"time_ms"`
	Angle  float64 `json:"angle"`
	Image  string  `json:"image"`
}

// Manifest is written next to the frames as manifest.json.
type Manifest struct {
	Format    Format          `json:"format"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Animation string          `json:"animation,omitempty"`
	Frames    []ManifestEntry `json:"frames"`
}

// NewManifest lists frames with the file names Run gives them.
func NewManifest(format Format, frames []Frame) Manifest {
	m := Manifest{Format: format, Frames: make([]ManifestEntry, len(frames))}
	if len(frames) > 0 && frames[0].Image != nil {
		b := frames[0].Image.Bounds()
		m.Width, m.Height = b.Dx(), b.Dy()
	}
	if format == FormatAnimatedWebP {
		m.Animation = AnimationName
	}
	for i, fr := range frames {
		e := ManifestEntry{Index: fr.Index, TimeMS: fr.TimeMS, Angle: fr.Angle}
		if format != FormatAnimatedWebP {
			e.Image = FileName(fr.Index, format)
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

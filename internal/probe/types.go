package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
// Duration and StartTime stay raw strings: they are fallback sources for
// the corresponding stream fields and empty means "absent".
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   string
	StartTime  string
	Size       int64
}

// VideoStream holds the properties of a single video stream that feed the
// report row. Rate, duration, timing, frame-count, and aspect-ratio fields
// are raw ffprobe strings; see package doc.
type VideoStream struct {
	Index        int
	Codec        string
	Width        int
	Height       int
	AvgFrameRate string
	RFrameRate   string
	Duration     string
	StartTime    string
	NbFrames     string
	SAR          string
	DAR          string
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first stream with codec_type "video" (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
}

package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result. A non-zero exit or malformed JSON is returned as an
// error; callers decide whether that aborts the batch.
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	NbStreams  int    `json:"nb_streams"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	StartTime  string `json:"start_time"`
	Size       string `json:"size"`
}

type ffprobeStream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	Duration     string `json:"duration"`
	StartTime    string `json:"start_time"`
	NbFrames     string `json:"nb_frames"`
	SAR          string `json:"sample_aspect_ratio"`
	DAR          string `json:"display_aspect_ratio"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{
		Format: convertFormat(&raw.Format),
	}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType == "video" {
			vs := convertVideo(s)
			r.PrimaryVideo = &vs
			break
		}
	}
	return r
}

func convertFormat(f *ffprobeFormat) FormatInfo {
	return FormatInfo{
		Filename:   f.Filename,
		NbStreams:  f.NbStreams,
		FormatName: f.FormatName,
		Duration:   f.Duration,
		StartTime:  f.StartTime,
		Size:       parseInt64(f.Size),
	}
}

func convertVideo(s *ffprobeStream) VideoStream {
	return VideoStream{
		Index:        s.Index,
		Codec:        s.CodecName,
		Width:        s.Width,
		Height:       s.Height,
		AvgFrameRate: s.AvgFrameRate,
		RFrameRate:   s.RFrameRate,
		Duration:     s.Duration,
		StartTime:    s.StartTime,
		NbFrames:     s.NbFrames,
		SAR:          s.SAR,
		DAR:          s.DAR,
	}
}

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/backmassage/videocheck/internal/probe"
)

// Context carries the caller-supplied fields of a row: the enclosing
// folder name, the probe timestamp shared by the whole run, and the
// file path relative to the scanned folder.
type Context struct {
	Folder    string
	ProbeDate string
	File      string
}

// Record is one report row. All fields are pre-formatted strings; a Record
// is immutable once built and consumed exactly once by the writers.
type Record struct {
	Folder          string
	ProbeDate       string
	File            string
	WxH             string
	FPS             string
	Frames          string
	DurationSeconds string
	SAR             string
	DAR             string
	StartSeconds    string
	Keyframes       string
	KFMin           string
	KFAvg           string
	KFMax           string
}

// Columns returns the fixed header, identical for CSV and TSV.
func Columns() []string {
	return []string{
		"Folder", "ProbeDate", "File", "WxH", "FPS", "Frames",
		"DurationSeconds", "SAR", "DAR", "StartSeconds",
		"Keyframes", "KF_Min_s", "KF_Avg_s", "KF_Max_s",
	}
}

// Row returns the record's cells in column order.
func (r *Record) Row() []string {
	return []string{
		r.Folder, r.ProbeDate, r.File, r.WxH, r.FPS, r.Frames,
		r.DurationSeconds, r.SAR, r.DAR, r.StartSeconds,
		r.Keyframes, r.KFMin, r.KFAvg, r.KFMax,
	}
}

// BuildRecord combines one probe result and one keyframe timestamp
// sequence into a row. kfOK is false when the keyframe probe failed; the
// four keyframe columns then render empty. pr must be non-nil; a missing
// video stream yields empty geometry/rate fields with container fallbacks
// where defined.
func BuildRecord(rctx Context, pr *probe.Result, kf []float64, kfOK bool) Record {
	v := pr.PrimaryVideo
	if v == nil {
		v = &probe.VideoStream{}
	}

	fps := frameRate(v)
	dur := duration(v, &pr.Format)

	rec := Record{
		Folder:          rctx.Folder,
		ProbeDate:       rctx.ProbeDate,
		File:            rctx.File,
		WxH:             dimensions(v),
		FPS:             formatRate(fps),
		Frames:          frames(v, fps, dur),
		DurationSeconds: formatSeconds(dur),
		SAR:             aspectRatio(v.SAR),
		DAR:             aspectRatio(v.DAR),
		StartSeconds:    fmt.Sprintf("%.6f", startTime(v, &pr.Format)),
	}
	rec.Keyframes, rec.KFMin, rec.KFAvg, rec.KFMax = keyframeStats(kf, kfOK)
	return rec
}

// dimensions renders "WxH" only when both width and height are positive.
func dimensions(v *probe.VideoStream) string {
	if v.Width <= 0 || v.Height <= 0 {
		return ""
	}
	return strconv.Itoa(v.Width) + "x" + strconv.Itoa(v.Height)
}

// frameRate resolves the stream frame rate: avg_frame_rate first, falling
// back to r_frame_rate when that is zero or unparseable, else 0.
func frameRate(v *probe.VideoStream) float64 {
	if f, ok := probe.ParseFraction(v.AvgFrameRate); ok && f != 0 {
		return f
	}
	if f, ok := probe.ParseFraction(v.RFrameRate); ok && f != 0 {
		return f
	}
	return 0
}

// duration resolves playback seconds: stream duration first, container
// duration as fallback, 0 when neither parses.
func duration(v *probe.VideoStream, f *probe.FormatInfo) float64 {
	return parseSeconds(firstNonEmpty(v.Duration, f.Duration))
}

// startTime resolves the start offset: stream start_time first, container
// start_time as fallback, 0 when neither parses.
func startTime(v *probe.VideoStream, f *probe.FormatInfo) float64 {
	return parseSeconds(firstNonEmpty(v.StartTime, f.StartTime))
}

// frames resolves the frame count. An explicit nb_frames always wins over
// the derived estimate; the "N/A" sentinel and parse failures yield empty,
// never an estimate.
func frames(v *probe.VideoStream, fps, dur float64) string {
	nb := strings.TrimSpace(v.NbFrames)
	if nb != "" && nb != "N/A" {
		n, err := strconv.Atoi(nb)
		if err != nil {
			return ""
		}
		return strconv.Itoa(n)
	}
	if fps != 0 && dur != 0 {
		return strconv.Itoa(int(math.Round(dur * fps)))
	}
	return ""
}

// aspectRatio passes the ffprobe ratio string through verbatim, treating
// the "N/A" sentinel as absent.
func aspectRatio(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

// keyframeStats renders the four keyframe columns. A failed probe renders
// all four empty; fewer than two timestamps render a count but no interval
// statistics.
func keyframeStats(ts []float64, ok bool) (count, min, avg, max string) {
	if !ok {
		return "", "", "", ""
	}
	count = strconv.Itoa(len(ts))
	if len(ts) < 2 {
		return count, "", "", ""
	}

	minD, maxD := math.Inf(1), math.Inf(-1)
	var sum float64
	for i := 1; i < len(ts); i++ {
		d := ts[i] - ts[i-1]
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	n := float64(len(ts) - 1)
	return count,
		fmt.Sprintf("%.3f", minD),
		fmt.Sprintf("%.3f", sum/n),
		fmt.Sprintf("%.3f", maxD)
}

// formatRate renders a frame rate to three decimals, empty when zero.
func formatRate(f float64) string {
	if f == 0 {
		return ""
	}
	return fmt.Sprintf("%.3f", f)
}

// formatSeconds renders a duration to six decimals, empty when zero.
// StartSeconds deliberately does not use this: it always renders.
func formatSeconds(f float64) string {
	if f == 0 {
		return ""
	}
	return fmt.Sprintf("%.6f", f)
}

func parseSeconds(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

package probe

import (
	"testing"
)

// Realistic ffprobe JSON for an MP4 with one H.264 video stream and one
// AAC audio stream. nb_frames and per-stream duration are present, as MP4
// containers typically report them.
const sampleMP4 = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "sample_aspect_ratio": "1:1",
      "display_aspect_ratio": "16:9",
      "r_frame_rate": "30000/1001",
      "avg_frame_rate": "30000/1001",
      "start_time": "0.000000",
      "duration": "600.600000",
      "nb_frames": "18000"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "sample_rate": "48000",
      "channels": 2,
      "start_time": "0.000000",
      "duration": "600.576000"
    }
  ],
  "format": {
    "filename": "/media/test/clip.mp4",
    "nb_streams": 2,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "start_time": "0.000000",
    "duration": "600.600000",
    "size": "123456789"
  }
}`

// Matroska output: no nb_frames, no per-stream duration or start_time,
// aspect ratios reported as "N/A". Only the container carries timing.
const sampleMKV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "width": 3840,
      "height": 2160,
      "sample_aspect_ratio": "N/A",
      "display_aspect_ratio": "N/A",
      "r_frame_rate": "24000/1001",
      "avg_frame_rate": "24000/1001"
    },
    {
      "index": 1,
      "codec_name": "opus",
      "codec_type": "audio",
      "channels": 6
    }
  ],
  "format": {
    "filename": "/media/test/film.mkv",
    "nb_streams": 2,
    "format_name": "matroska,webm",
    "start_time": "-0.007000",
    "duration": "5400.123000",
    "size": "9876543210"
  }
}`

// Audio-only file: no video stream at all.
const sampleAudioOnly = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "channels": 2
    }
  ],
  "format": {
    "filename": "/media/test/song.mp4",
    "nb_streams": 1,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "start_time": "0.025057",
    "duration": "185.256000",
    "size": "4242424"
  }
}`

func TestParseJSON_MP4(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMP4))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if r.PrimaryVideo == nil {
		t.Fatal("PrimaryVideo is nil")
	}
	v := r.PrimaryVideo
	if v.Codec != "h264" {
		t.Errorf("Codec = %q, want h264", v.Codec)
	}
	if v.Width != 1920 || v.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", v.Width, v.Height)
	}
	if v.AvgFrameRate != "30000/1001" || v.RFrameRate != "30000/1001" {
		t.Errorf("frame rates = %q / %q", v.AvgFrameRate, v.RFrameRate)
	}
	if v.NbFrames != "18000" {
		t.Errorf("NbFrames = %q, want 18000", v.NbFrames)
	}
	if v.Duration != "600.600000" {
		t.Errorf("Duration = %q", v.Duration)
	}
	if v.SAR != "1:1" || v.DAR != "16:9" {
		t.Errorf("SAR/DAR = %q / %q", v.SAR, v.DAR)
	}
	if r.Format.Duration != "600.600000" {
		t.Errorf("Format.Duration = %q", r.Format.Duration)
	}
	if r.Format.Size != 123456789 {
		t.Errorf("Format.Size = %d", r.Format.Size)
	}
}

func TestParseJSON_MKVRawSentinels(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMKV))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	v := r.PrimaryVideo
	if v == nil {
		t.Fatal("PrimaryVideo is nil")
	}
	// Absent and sentinel values must survive as raw strings; the report
	// layer decides what they mean.
	if v.NbFrames != "" {
		t.Errorf("NbFrames = %q, want empty", v.NbFrames)
	}
	if v.Duration != "" || v.StartTime != "" {
		t.Errorf("stream timing = %q / %q, want empty", v.Duration, v.StartTime)
	}
	if v.SAR != "N/A" || v.DAR != "N/A" {
		t.Errorf("SAR/DAR = %q / %q, want N/A kept verbatim", v.SAR, v.DAR)
	}
	if r.Format.StartTime != "-0.007000" {
		t.Errorf("Format.StartTime = %q", r.Format.StartTime)
	}
}

func TestParseJSON_FirstVideoStreamWins(t *testing.T) {
	const twoVideo = `{
  "streams": [
    {"index": 0, "codec_type": "audio", "codec_name": "aac"},
    {"index": 1, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720},
    {"index": 2, "codec_type": "video", "codec_name": "mjpeg", "width": 600, "height": 900}
  ],
  "format": {"filename": "x.mp4", "nb_streams": 3}
}`
	r, err := ParseJSON([]byte(twoVideo))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r.PrimaryVideo == nil || r.PrimaryVideo.Index != 1 {
		t.Errorf("PrimaryVideo = %+v, want stream index 1", r.PrimaryVideo)
	}
}

func TestParseJSON_NoVideoStream(t *testing.T) {
	r, err := ParseJSON([]byte(sampleAudioOnly))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r.PrimaryVideo != nil {
		t.Errorf("PrimaryVideo = %+v, want nil", r.PrimaryVideo)
	}
	if r.Format.Duration != "185.256000" {
		t.Errorf("Format.Duration = %q", r.Format.Duration)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON([]byte("not json at all")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := ParseJSON([]byte("")); err == nil {
		t.Error("expected error for empty input")
	}
}

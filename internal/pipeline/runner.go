// Package pipeline orchestrates file discovery, sequential per-file
// probing, and report serialization.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/backmassage/videocheck/internal/config"
	"github.com/backmassage/videocheck/internal/logging"
	"github.com/backmassage/videocheck/internal/probe"
	"github.com/backmassage/videocheck/internal/report"
)

// Run is the top-level batch entry point: discover files, probe each one
// sequentially, then write both report files. Files are probed to
// completion one at a time; no output is written until every file has
// been processed.
//
// A primary probe failure aborts the run with an error unless KeepGoing
// is set, in which case the file is logged and skipped. Keyframe probe
// failures never abort; the affected row gets empty keyframe columns.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.Folder)
	if err != nil {
		return stats, fmt.Errorf("file discovery: %w", err)
	}
	stats.Total = len(files)

	start := time.Now()
	runID := uuid.New()
	folderBase := cfg.FolderBase()

	log.Info("=== videocheck ===")
	log.Info("Folder: %s", cfg.Folder)
	log.Info("Output: %s", cfg.OutDir)
	log.Info("Found %d video files", stats.Total)
	log.Debug(cfg.Verbose, "Run ID: %s", runID)

	rctx := report.Context{
		Folder:    folderBase,
		ProbeDate: report.ProbeDate(start),
	}

	records := make([]report.Record, 0, len(files))
	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted, no reports written")
			return stats, ctx.Err()
		}

		rec, err := processFile(ctx, cfg, log, path, rctx, &stats)
		if err != nil {
			// A cancelled context surfaces as a probe error; report it as
			// an interrupt, not a corrupt file.
			if ctx.Err() != nil {
				log.Warn("Interrupted, no reports written")
				return stats, ctx.Err()
			}
			if cfg.KeepGoing {
				log.Error("Skipping %s: %v", filepath.Base(path), err)
				stats.Failed++
				continue
			}
			return stats, err
		}
		records = append(records, rec)
		stats.Probed++
	}

	csvPath, tsvPath, err := report.Write(cfg.OutDir, folderBase, start, records)
	if err != nil {
		return stats, err
	}

	log.Success("Wrote %s", csvPath)
	log.Success("Wrote %s", tsvPath)
	logSummary(log, &stats, time.Since(start))
	return stats, nil
}

// processFile probes one file and assembles its report row.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	rctx report.Context,
	stats *RunStats,
) (report.Record, error) {
	base := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, base)

	if fi, err := os.Stat(path); err == nil {
		stats.TotalBytes += fi.Size()
	}

	if cfg.VerifyContent {
		verifyContent(log, path)
	}

	pr, err := probe.Probe(ctx, path)
	if err != nil {
		return report.Record{}, err
	}
	if pr.PrimaryVideo == nil {
		log.Warn("  No video stream")
	}

	// Best-effort: a failed keyframe probe degrades this row only.
	kf, kfErr := probe.Keyframes(ctx, path)
	if kfErr != nil {
		log.Warn("  Keyframe probe failed: %v", kfErr)
		stats.Degraded++
	}

	rel, err := filepath.Rel(cfg.Folder, path)
	if err != nil {
		rel = path
	}
	rctx.File = rel

	return report.BuildRecord(rctx, pr, kf, kfErr == nil), nil
}

// verifyContent sniffs the file's magic bytes and warns when the detected
// type is not a video format. Informational only; the file stays in the
// report either way.
func verifyContent(log *logging.Logger, path string) {
	t, err := filetype.MatchFile(path)
	if err != nil {
		log.Warn("  Content check failed: %v", err)
		return
	}
	if t.MIME.Type != "video" {
		log.Warn("  Extension says video, content looks like %q", t.MIME.Value)
	}
}

func logSummary(log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	log.Info("==============================")
	log.Info("Done: %d probed, %d skipped, %d with keyframe fallback",
		stats.Probed, stats.Failed, stats.Degraded)
	log.Info("Scanned %s in %s",
		humanize.IBytes(uint64(stats.TotalBytes)), elapsed.Round(time.Millisecond))
}

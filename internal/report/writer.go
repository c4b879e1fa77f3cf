package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Timestamp formats the run time as it appears in report filenames.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02_1504")
}

// ProbeDate formats the run time as it appears in the ProbeDate column.
func ProbeDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FileNames returns the CSV and TSV report filenames for a folder basename
// and run time. Both share the same timestamp.
func FileNames(folderBase string, t time.Time) (csvName, tsvName string) {
	stem := fmt.Sprintf("video_check_%s_%s", folderBase, Timestamp(t))
	return stem + ".csv", stem + ".tsv"
}

// Write serializes records into outDir as both CSV and TSV, creating the
// directory if needed. It returns the two paths written. Nothing is
// written until the full batch has been processed, so an aborted run
// leaves no output files.
func Write(outDir, folderBase string, t time.Time, records []Record) (csvPath, tsvPath string, err error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	csvName, tsvName := FileNames(folderBase, t)
	csvPath = filepath.Join(outDir, csvName)
	tsvPath = filepath.Join(outDir, tsvName)

	if err := writeCSV(csvPath, records); err != nil {
		return "", "", err
	}
	if err := writeTSV(tsvPath, records); err != nil {
		return "", "", err
	}
	return csvPath, tsvPath, nil
}

// writeCSV writes a header row plus one quoted-as-needed row per record.
func writeCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for i := range records {
		if err := w.Write(records[i].Row()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// writeTSV writes tab-separated rows with a header and no quoting.
func writeTSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString(strings.Join(Columns(), "\t"))
	b.WriteByte('\n')
	for i := range records {
		b.WriteString(strings.Join(records[i].Row(), "\t"))
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

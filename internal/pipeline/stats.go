package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// Degraded counts files whose keyframe probe failed but still produced a
// row with empty keyframe columns.
type RunStats struct {
	Total      int
	Current    int
	Probed     int
	Failed     int
	Degraded   int
	TotalBytes int64
}

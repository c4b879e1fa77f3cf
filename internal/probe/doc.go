// Package probe provides ffprobe-based media inspection and typed result
// structures. Each scanned file gets two subprocess calls: one JSON
// format/stream probe and one keyframe timestamp probe.
//
// ffprobe reports most numeric values as strings, and several of them carry
// meaningful sentinels ("N/A") or fallback chains (stream duration vs.
// container duration). The wire fields that feed those chains are kept as
// raw strings here; interpretation happens in the report package.
package probe

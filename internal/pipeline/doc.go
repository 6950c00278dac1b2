// Package pipeline orchestrates file discovery, task construction, parallel
// conversion, and batch summary reporting.
//
// A run is: discover eligible images (non-recursive) → derive one immutable
// (source, destination) task per file → fan out to a bounded worker pool →
// drain results in completion order, printing a running counter → print the
// final sentinel and summary. The first failed result aborts the drain loop;
// outputs already written stay on disk.
package pipeline

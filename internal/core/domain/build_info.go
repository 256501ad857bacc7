package domain

import "time"

// BuildRecord describes the last packaged bundle of a target.
type BuildRecord struct {
	Target      BuildTarget `json:"target"`
	RunID       string      `json:"run_id,omitzero"`
	BuildNumber string      `json:"build_number,omitzero"`
	BuildName   string      `json:"build_name,omitzero"`
	Options     []string    `json:"options,omitempty"`
	OutputPath  string      `json:"output_path,omitzero"`
	Bundle      string      `json:"bundle,omitzero"`
	ArchivePath string      `json:"archive_path,omitzero"`
	ArchiveSize int64       `json:"archive_size,omitzero"`
	Checksum    string      `json:"checksum,omitzero"`
	Timestamp   time.Time   `json:"timestamp,omitzero"`
}

// ArchiveResult describes an archive written by the packager.
type ArchiveResult struct {
	Path     string
	Size     int64
	Checksum string
	Entries  int
}

package defs

import "io/fs"

// File modes used when writing generated projects and settings.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

package domain

// Kind classifies what a filesystem path points at.
type Kind int

const (
	// KindAbsent means the path does not exist or could not be inspected.
	KindAbsent Kind = iota
	// KindFile means the path is a regular file (or anything that is not a directory).
	KindFile
	// KindDirectory means the path is a directory.
	KindDirectory
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

package domain

// ManifestFile is the name of the package manifest looked up in directories.
const ManifestFile = "package.json"

// Manifest holds the fields of a package manifest the resolver cares about.
type Manifest struct {
	// Main is the declared entry file. Empty when absent or not a string.
	Main string
}

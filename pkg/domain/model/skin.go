package model

// SkinFolder represents a candidate skin directory found under the base directory
type SkinFolder struct {
	Name string // Directory name as listed
	Path string // Absolute path to the directory
}

// Destination represents one of the fixed output locations offered to the user
type Destination struct {
	Label string // Menu label, e.g. "Desktop"
	Path  string // Resolved absolute directory path
}

// PackResult represents a successfully created .osk archive
type PackResult struct {
	Source      string // Source skin folder path
	SkinName    string // Display name read from Skin.ini
	ArchivePath string // Absolute path of the created archive
	Entries     int    // Number of files stored in the archive
	Renamed     bool   // Archive name was suffixed because another skin in the run used the same name
}

package driven

// SourceFactory creates sources for the locations the pipeline is given.
type SourceFactory interface {
	// Directory returns a source over the table files of a directory.
	Directory(path string) Source

	// Files returns a source over an explicit list of files.
	Files(paths ...string) Source
}

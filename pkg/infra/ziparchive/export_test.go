package ziparchive

var (
	EntryPathForTest = entryPath
	WithinDirForTest = withinDir
)

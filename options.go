package artree

// Options configures a RadixTree.
type Options struct {
	// CacheSize bounds the lookup cache in entries. Zero disables caching,
	// which is the right call for write-heavy trees.
	CacheSize int
}

// DefaultOptions disables the lookup cache.
var DefaultOptions = Options{
	CacheSize: 0,
}

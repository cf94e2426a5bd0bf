package tree23

const (
	// A node holding maxEntries entries is a 4-node: unstable, it only exists
	// between insertData and split within a single Insert.
	maxEntries  = 3
	maxStable   = maxEntries - 1
	maxChildren = maxEntries + 1

	// nilNode is the zero nodeID. Slot 0 of the arena is never handed out, so
	// zeroed child and parent links read as "none".
	nilNode nodeID = 0

	dumpIndent = "    "
	dumpEmpty  = "tree is empty"
)

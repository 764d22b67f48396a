package domain

import "time"

// Sample is one raw observation from the accessibility bridge: the package
// name of the foreground app, the UI-tree snapshot, and the capture time.
// Root may be nil when no snapshot was obtainable; that is not an error.
type Sample struct {
	Pkg  string
	Root *Node
	At   time.Time
}

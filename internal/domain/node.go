package domain

// Node is one element of a UI-tree snapshot delivered by the accessibility
// bridge. Type carries the platform widget class, ID the stable resource
// identifier (empty when the node has none).
type Node struct {
	Type     string  `json:"type"`
	ID       string  `json:"id,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

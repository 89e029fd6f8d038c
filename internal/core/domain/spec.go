package domain

// DependencySpec is a parsed dependency document: the hand-authored spec or a
// resolved export with pinned tokens. It is never mutated after parsing.
type DependencySpec struct {
	// Name is the declared environment name.
	Name string

	// Dependencies preserves document order.
	Dependencies []DependencyEntry
}

// DependencyEntry is one element of the dependencies sequence.
// The set of implementations is closed: DirectPackage, NestedGroup and UnrecognizedEntry.
type DependencyEntry interface {
	isDependencyEntry()
}

// DirectPackage is a primary-ecosystem token such as "numpy" or "numpy=1.21.0=py39h1".
type DirectPackage struct {
	Token string
}

// NestedGroup is an embedded sub-ecosystem requirement list, e.g. pip requirements
// declared inside a conda environment.
type NestedGroup struct {
	// Ecosystem is the mapping key the group was declared under ("pip"), or empty
	// for a bare nested sequence.
	Ecosystem string

	Tokens []string
}

// UnrecognizedEntry is any entry shape that is neither a scalar nor a nested group.
// It is kept so callers can report it, and is ignored for package extraction.
type UnrecognizedEntry struct {
	// Kind describes the shape encountered, e.g. "mapping".
	Kind string
}

func (DirectPackage) isDependencyEntry()     {}
func (NestedGroup) isDependencyEntry()       {}
func (UnrecognizedEntry) isDependencyEntry() {}

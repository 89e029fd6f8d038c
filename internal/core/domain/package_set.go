package domain

import (
	"maps"
	"slices"
	"strings"
)

// PackageNameSet holds the package names of a dependency document,
// split by ecosystem and stripped of version qualifiers.
type PackageNameSet struct {
	Direct map[string]struct{}
	Nested map[string]struct{}
}

// PackageName returns the name part of a package token: everything before the
// first "=". Tokens without "=" are returned unchanged.
func PackageName(token string) string {
	name, _, _ := strings.Cut(token, "=")
	return name
}

// PackageNames reduces the dependency spec's entries to name sets.
func (s *DependencySpec) PackageNames() PackageNameSet {
	set := PackageNameSet{
		Direct: make(map[string]struct{}),
		Nested: make(map[string]struct{}),
	}

	for _, entry := range s.Dependencies {
		switch e := entry.(type) {
		case DirectPackage:
			set.Direct[PackageName(e.Token)] = struct{}{}
		case NestedGroup:
			for _, token := range e.Tokens {
				set.Nested[PackageName(token)] = struct{}{}
			}
		case UnrecognizedEntry:
			// Unknown shapes never contribute names.
		}
	}

	return set
}

// MissingFrom returns the names of s that are absent from other, per ecosystem, sorted.
func (s PackageNameSet) MissingFrom(other PackageNameSet) (direct, nested []string) {
	return missing(s.Direct, other.Direct), missing(s.Nested, other.Nested)
}

// IsSupersetOf reports whether every name in requested is present in s.
func (s PackageNameSet) IsSupersetOf(requested PackageNameSet) bool {
	direct, nested := requested.MissingFrom(s)
	return len(direct) == 0 && len(nested) == 0
}

func missing(want, have map[string]struct{}) []string {
	var out []string
	for name := range want {
		if _, ok := have[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Names returns the sorted names of a set member map.
func Names(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}

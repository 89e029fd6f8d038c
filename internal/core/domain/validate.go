package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ValidateLock checks that the resolved document contains every package name
// the requested spec asks for, in both ecosystems. Versions and extra packages
// are ignored. The error names the missing packages.
func ValidateLock(requested, resolved *DependencySpec) error {
	want, have := requested.PackageNames(), resolved.PackageNames()
	if have.IsSupersetOf(want) {
		return nil
	}

	direct, nested := want.MissingFrom(have)

	err := zerr.Wrap(ErrInvalidLock, "resolved environment is missing requested packages")
	if len(direct) > 0 {
		err = zerr.With(err, "missing_direct", strings.Join(direct, ","))
	}
	if len(nested) > 0 {
		err = zerr.With(err, "missing_nested", strings.Join(nested, ","))
	}
	return err
}

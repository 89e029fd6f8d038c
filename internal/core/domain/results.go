package domain

// FreezeRequest asks for a spec to be frozen into a lockfile for a target platform.
type FreezeRequest struct {
	SpecPath     string
	LockfilePath string
	Target       Platform
}

// FreezeStatus describes what a freeze did.
type FreezeStatus int

const (
	// FreezeAlreadyFresh means the existing lockfile already matched and nothing ran.
	FreezeAlreadyFresh FreezeStatus = iota
	// FreezeWritten means a new lockfile was committed.
	FreezeWritten
)

// FreezeResult is the outcome of a successful freeze.
type FreezeResult struct {
	Status       FreezeStatus
	LockfilePath string
	Hash         string
}

// AuditStatus is the freshness verdict for one lockfile.
type AuditStatus int

const (
	// AuditFresh means the embedded hash equals the dependency spec hash.
	AuditFresh AuditStatus = iota
	// AuditStale means the embedded hash differs from the dependency spec hash.
	AuditStale
	// AuditError means the lockfile could not be read or carried no hash.
	AuditError
)

func (s AuditStatus) String() string {
	switch s {
	case AuditFresh:
		return "fresh"
	case AuditStale:
		return "stale"
	default:
		return "error"
	}
}

// LockfileAudit is the verdict for a single lockfile.
type LockfileAudit struct {
	Path     string
	Status   AuditStatus
	Expected string
	Found    string
	Err      error
}

// AuditReport collects verdicts for every checked lockfile against one spec.
type AuditReport struct {
	SpecPath string
	Expected string
	Results  []LockfileAudit
}

// Fresh reports whether every checked lockfile matched.
func (r *AuditReport) Fresh() bool {
	for _, res := range r.Results {
		if res.Status != AuditFresh {
			return false
		}
	}
	return len(r.Results) > 0
}

// Failures returns the verdicts that did not match.
func (r *AuditReport) Failures() []LockfileAudit {
	var out []LockfileAudit
	for _, res := range r.Results {
		if res.Status != AuditFresh {
			out = append(out, res)
		}
	}
	return out
}

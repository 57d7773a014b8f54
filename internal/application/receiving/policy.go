// Package receiving implements the staging-and-submission workflow: the
// per-session staging list, the grid/editor adapter over it, the source-row
// cache and the submission validator+committer.
package receiving

import "github.com/BoostersSCM/Input-Management/pkg/config"

// Policy is the workflow configuration resolved once at startup. The
// observed workflow variants disagree on duplicate handling, identifier
// casing and the default confirmed quantity, so all three live here.
type Policy struct {
	DuplicatePolicy      string // config.DuplicateReject | DuplicateAllow | DuplicateDedupeOnAdd
	UppercaseIdentifiers bool
	CopyScheduledQty     bool
}

// PolicyFromConfig maps the receiving section of the app config.
func PolicyFromConfig(cfg config.ReceivingConfig) Policy {
	return Policy{
		DuplicatePolicy:      cfg.DuplicatePolicy,
		UppercaseIdentifiers: cfg.UppercaseIdentifiers,
		CopyScheduledQty:     cfg.CopyScheduledQty,
	}
}

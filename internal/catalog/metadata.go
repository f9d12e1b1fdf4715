package catalog

import (
	"time"
)

// ActivityStatus classifies how recently a server's repository saw a commit.
// The ordering is meaningful: higher values indicate more activity.
type ActivityStatus int

const (
	ActivityUnknown ActivityStatus = iota
	ActivityArchived
	ActivityStale
	ActivityRecent
	ActivityActive
)

func (a ActivityStatus) String() string {
	switch a {
	case ActivityActive:
		return "active"
	case ActivityRecent:
		return "recent"
	case ActivityStale:
		return "stale"
	case ActivityArchived:
		return "archived"
	default:
		return "unknown"
	}
}

// MetadataRecord holds auxiliary repository statistics for a server, sourced
// independently of the registry listing itself.
type MetadataRecord struct {
	Stars      int
	Forks      int
	OpenIssues int
	Language   string
	Topics     []string
	License    string
	LastCommit *time.Time
	Archived   bool
}

// Activity derives the ActivityStatus for the record at the given reference
// time. The archived flag wins over any timestamp; a missing timestamp means
// the activity cannot be determined.
func (m MetadataRecord) Activity(now time.Time) ActivityStatus {
	if m.Archived {
		return ActivityArchived
	}
	if m.LastCommit == nil {
		return ActivityUnknown
	}

	switch age := now.Sub(*m.LastCommit); {
	case age <= 30*24*time.Hour:
		return ActivityActive
	case age <= 6*30*24*time.Hour:
		return ActivityRecent
	default:
		return ActivityStale
	}
}

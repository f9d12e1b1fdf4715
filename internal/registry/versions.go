package registry

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two free-form version strings with numeric-aware
// ordering, so "2.10" sorts above "2.9". Both values are compared as semver
// when they parse; otherwise dotted segments are compared pairwise, numeric
// when both sides are numeric, lexicographic when not.
// Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(strings.TrimSpace(a))
	vb, errB := semver.NewVersion(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}

	return compareSegments(strings.TrimSpace(a), strings.TrimSpace(b))
}

func compareSegments(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, errA := strconv.Atoi(as[i])
		bn, errB := strconv.Atoi(bs[i])

		if errA == nil && errB == nil {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			continue
		}

		if cmp := strings.Compare(as[i], bs[i]); cmp != 0 {
			return cmp
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

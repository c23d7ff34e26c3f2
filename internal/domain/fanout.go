package domain

// ProfileChange is the event emitted after every user profile write. The
// fan-out worker diffs Before/After to decide what, if anything, to propagate.
type ProfileChange struct {
	UserID uint
	Before UserProfile
	After  UserProfile
}

// BadgesChanged reports whether the watched challengeBadges field changed.
func (c ProfileChange) BadgesChanged() bool {
	return !EqualStringSlices(c.Before.ChallengeBadges, c.After.ChallengeBadges)
}

// IdentityChanged reports whether the watched gameIdentity field changed.
func (c ProfileChange) IdentityChanged() bool {
	return c.Before.GameIdentity != c.After.GameIdentity
}

// EqualStringSlices is an order-sensitive element-wise comparison; a nil and
// an empty slice compare equal.
func EqualStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

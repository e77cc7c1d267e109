package domain

// AchievementSet maps an achievement key to its unlocked flag. Flags are
// monotonic: once true they are never reset by normal operation.
type AchievementSet map[string]bool

// Clone returns an independent copy of the set.
func (a AchievementSet) Clone() AchievementSet {
	out := make(AchievementSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// CountUnlocked returns how many flags are set.
func (a AchievementSet) CountUnlocked() int {
	n := 0
	for _, v := range a {
		if v {
			n++
		}
	}
	return n
}

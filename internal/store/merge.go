package store

import "github.com/dmitrijs2005/showcase/internal/models"

// Merge combines two ordered user sequences keyed by username. Entries are
// applied in order, baseline first, then repaired; a later entry with the
// same username replaces an earlier one in place, so a user's own edits win
// over the seed while every baseline account is still guaranteed present.
// Entries with an empty username are dropped.
func Merge(baseline, repaired []models.User) []models.User {
	out := make([]models.User, 0, len(baseline)+len(repaired))
	index := make(map[string]int, len(baseline)+len(repaired))

	for _, seq := range [][]models.User{baseline, repaired} {
		for _, u := range seq {
			if u.Username == "" {
				continue
			}
			if i, ok := index[u.Username]; ok {
				out[i] = u
				continue
			}
			index[u.Username] = len(out)
			out = append(out, u)
		}
	}
	return out
}

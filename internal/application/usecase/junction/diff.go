// Package junction reconciles the stored child rows of an aggregate against the
// desired set. Rows are matched by counterpart key, never by row id.
package junction

import "github.com/google/uuid"

// Diff is the outcome of reconciling stored child rows with desired ones.
type Diff[R any] struct {
	// Insert holds desired rows whose key is not stored yet.
	Insert []R
	// Update holds desired rows whose key is stored but whose values changed.
	// They carry the stored row's identity.
	Update []R
	// Delete holds stored rows whose key is no longer desired.
	Delete []R
	// Kept holds stored rows that are desired unchanged.
	Kept []R
	// Result is the child set after the diff is applied, in desired order.
	Result []R
}

// Changed reports whether applying the diff writes anything.
func (d Diff[R]) Changed() bool {
	return len(d.Insert)+len(d.Update)+len(d.Delete) > 0
}

// Reconcile computes the diff between stored and desired rows keyed by key.
// equal compares the value fields of a stored and a desired row with the same key;
// adopt copies the stored row's identity onto the desired row before it is updated.
func Reconcile[K comparable, R any](
	stored, desired []R,
	key func(R) K,
	equal func(stored, desired R) bool,
	adopt func(stored, desired R),
) Diff[R] {
	byKey := make(map[K]R, len(stored))
	for _, s := range stored {
		byKey[key(s)] = s
	}

	var d Diff[R]
	wanted := make(map[K]struct{}, len(desired))
	for _, w := range desired {
		k := key(w)
		wanted[k] = struct{}{}

		s, ok := byKey[k]
		switch {
		case !ok:
			d.Insert = append(d.Insert, w)
			d.Result = append(d.Result, w)
		case equal(s, w):
			d.Kept = append(d.Kept, s)
			d.Result = append(d.Result, s)
		default:
			adopt(s, w)
			d.Update = append(d.Update, w)
			d.Result = append(d.Result, w)
		}
	}

	for _, s := range stored {
		if _, ok := wanted[key(s)]; !ok {
			d.Delete = append(d.Delete, s)
		}
	}
	return d
}

// IDs collects the row ids of rows.
func IDs[R any](rows []R, id func(R) uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = id(r)
	}
	return ids
}

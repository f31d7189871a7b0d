package junction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uuid.UUID
	Key   string
	Value int
}

func reconcileRows(stored, desired []*row) Diff[*row] {
	return Reconcile(stored, desired,
		func(r *row) string { return r.Key },
		func(s, d *row) bool { return s.Value == d.Value },
		func(s, d *row) { d.ID = s.ID },
	)
}

func TestReconcile(t *testing.T) {
	a := &row{ID: uuid.New(), Key: "A", Value: 5}
	b := &row{ID: uuid.New(), Key: "B", Value: 10}

	desiredB := &row{ID: uuid.New(), Key: "B", Value: 10}
	desiredC := &row{ID: uuid.New(), Key: "C", Value: 7}

	d := reconcileRows([]*row{a, b}, []*row{desiredB, desiredC})

	require.Len(t, d.Delete, 1)
	assert.Same(t, a, d.Delete[0])
	require.Len(t, d.Insert, 1)
	assert.Same(t, desiredC, d.Insert[0])
	require.Len(t, d.Kept, 1)
	assert.Same(t, b, d.Kept[0])
	assert.Empty(t, d.Update)
	assert.Equal(t, []*row{b, desiredC}, d.Result)
	assert.True(t, d.Changed())
}

func TestReconcile_UpdateAdoptsIdentity(t *testing.T) {
	stored := &row{ID: uuid.New(), Key: "A", Value: 5}
	desired := &row{ID: uuid.New(), Key: "A", Value: 8}

	d := reconcileRows([]*row{stored}, []*row{desired})

	require.Len(t, d.Update, 1)
	assert.Equal(t, stored.ID, d.Update[0].ID)
	assert.Equal(t, 8, d.Update[0].Value)
	assert.Empty(t, d.Insert)
	assert.Empty(t, d.Delete)
}

func TestReconcile_NoChange(t *testing.T) {
	stored := &row{ID: uuid.New(), Key: "A", Value: 5}
	d := reconcileRows([]*row{stored}, []*row{{ID: uuid.New(), Key: "A", Value: 5}})

	assert.False(t, d.Changed())
	assert.Equal(t, []*row{stored}, d.Result)
}

func TestReconcile_EmptySets(t *testing.T) {
	stored := &row{ID: uuid.New(), Key: "A", Value: 1}

	d := reconcileRows([]*row{stored}, nil)
	assert.Equal(t, []*row{stored}, d.Delete)
	assert.Empty(t, d.Result)

	d = reconcileRows(nil, nil)
	assert.False(t, d.Changed())
}

func TestIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := IDs([]*row{{ID: a}, {ID: b}}, func(r *row) uuid.UUID { return r.ID })
	assert.Equal(t, []uuid.UUID{a, b}, got)
}

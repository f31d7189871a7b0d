package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/domain/entity"
)

func TestActiveTerm(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := entity.NewTerm(1, nil, base, base.Add(entity.DefaultTermLength), nil)
	second := entity.NewTerm(2, nil, first.TargetDate.AddDate(0, 0, 1), first.TargetDate.AddDate(0, 0, 71), nil)
	terms := []*entity.Term{second, first}

	got := ActiveTerm(terms, base.AddDate(0, 0, 10))
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TermNumber)
	assert.Equal(t, entity.TermStatusActive, got.Status(base.AddDate(0, 0, 10)))

	got = ActiveTerm(terms, second.StartDate)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.TermNumber)

	assert.Nil(t, ActiveTerm(terms, base.AddDate(-1, 0, 0)))
	assert.Equal(t, entity.TermStatusUpcoming, first.Status(base.AddDate(-1, 0, 0)))
	assert.Equal(t, entity.TermStatusComplete, first.Status(second.StartDate))
}

func TestNextTermNumber(t *testing.T) {
	assert.Equal(t, 1, NextTermNumber(nil))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, NextTermNumber([]*entity.Term{
		entity.NewTerm(3, nil, base, base.AddDate(0, 1, 0), nil),
		entity.NewTerm(1, nil, base, base.AddDate(0, 1, 0), nil),
	}))
}

package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func requireKind(t *testing.T, err error, kind error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)

	var vErr *domainerror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, field, vErr.Field)
	assert.NotEmpty(t, vErr.Message)
}

func TestRequireNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{name: "nil", value: nil, wantErr: true},
		{name: "empty", value: strPtr(""), wantErr: true},
		{name: "whitespace only", value: strPtr(" \t\n"), wantErr: true},
		{name: "text", value: strPtr("Run a marathon"), wantErr: false},
		{name: "padded text", value: strPtr("  x  "), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireNonEmpty(tt.value, "title")
			if tt.wantErr {
				requireKind(t, err, domainerror.ErrContentEmpty, "title")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequireAnyNonEmpty(t *testing.T) {
	t.Run("all empty fails and names every field", func(t *testing.T) {
		err := RequireAnyNonEmpty(Text(nil, "title"), Text(strPtr(" "), "description"))
		requireKind(t, err, domainerror.ErrContentEmpty, "title/description")
		assert.Contains(t, err.Error(), "title or description")
	})

	t.Run("one filled passes", func(t *testing.T) {
		assert.NoError(t, RequireAnyNonEmpty(Text(nil, "title"), Text(strPtr("notes"), "description")))
	})

	t.Run("non-text member counts", func(t *testing.T) {
		assert.NoError(t, RequireAnyNonEmpty(Text(nil, "title"), Filled(true, "measurements")))
	})

	t.Run("lists three names", func(t *testing.T) {
		err := RequireAnyNonEmpty(Text(nil, "a"), Text(nil, "b"), Filled(false, "c"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a, b or c")
	})
}

func TestRequireInRange(t *testing.T) {
	closed := Closed(1, 10)

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "below", value: 0, wantErr: true},
		{name: "lower bound", value: 1, wantErr: false},
		{name: "inside", value: 5, wantErr: false},
		{name: "upper bound", value: 10, wantErr: false},
		{name: "above", value: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireInRange(tt.value, closed, "importance")
			if tt.wantErr {
				requireKind(t, err, domainerror.ErrRangeViolation, "importance")
				assert.Contains(t, err.Error(), "between 1 and 10")
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("at least is inclusive", func(t *testing.T) {
		assert.NoError(t, RequireInRange(0.0, AtLeast(0.0), "duration"))
		requireKind(t, RequireInRange(-0.5, AtLeast(0.0), "duration"), domainerror.ErrRangeViolation, "duration")
	})

	t.Run("greater than is exclusive", func(t *testing.T) {
		assert.NoError(t, RequireInRange(1, GreaterThan(0), "term number"))
		requireKind(t, RequireInRange(0, GreaterThan(0), "term number"), domainerror.ErrRangeViolation, "term number")
	})

	t.Run("decimals", func(t *testing.T) {
		positive := DecimalGreaterThan(decimal.Zero)
		assert.NoError(t, RequireInRange(decimal.RequireFromString("0.01"), positive, "target"))
		requireKind(t, RequireInRange(decimal.Zero, positive, "target"), domainerror.ErrRangeViolation, "target")

		nonNegative := DecimalAtLeast(decimal.Zero)
		assert.NoError(t, RequireInRange(decimal.Zero, nonNegative, "value"))
		requireKind(t, RequireInRange(decimal.NewFromInt(-1), nonNegative, "value"), domainerror.ErrRangeViolation, "value")
	})

	t.Run("optional nil passes", func(t *testing.T) {
		assert.NoError(t, RequireOptionalInRange[int](nil, closed, "urgency"))
		v := 11
		requireKind(t, RequireOptionalInRange(&v, closed, "urgency"), domainerror.ErrRangeViolation, "urgency")
	})
}

func TestRequireEachInRange(t *testing.T) {
	type pair struct{ strength *int }
	one, eleven := 1, 11

	items := []pair{{strength: &one}, {strength: nil}, {strength: &eleven}}
	err := RequireEachOptionalInRange(items, func(p pair) *int { return p.strength }, Closed(1, 10), "value alignment", "alignment strength")
	requireKind(t, err, domainerror.ErrRangeViolation, "value alignment 3 alignment strength")

	values := []int{0, 3, 7}
	assert.NoError(t, RequireEachInRange(values, func(v int) int { return v }, AtLeast(0), "measurement", "value"))
}

func TestRequireEqual(t *testing.T) {
	id := uuid.New()
	assert.NoError(t, RequireEqual(id, id, "goal id", "expectation id"))
	requireKind(t, RequireEqual(id, uuid.New(), "goal id", "expectation id"), domainerror.ErrInconsistentReference, "goal id")
}

func TestRequireMatchAll(t *testing.T) {
	parent := uuid.New()
	type child struct{ parentID uuid.UUID }

	good := []child{{parentID: parent}, {parentID: parent}}
	assert.NoError(t, RequireMatchAll(good, parent, func(c child) uuid.UUID { return c.parentID }, "metric target", "goal id"))

	bad := []child{{parentID: parent}, {parentID: uuid.New()}}
	err := RequireMatchAll(bad, parent, func(c child) uuid.UUID { return c.parentID }, "metric target", "goal id")
	requireKind(t, err, domainerror.ErrInconsistentReference, "metric target 2 goal id")
}

func TestRequireUnique(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.NoError(t, RequireUnique([]uuid.UUID{a, b}, func(id uuid.UUID) uuid.UUID { return id }, "metric target", "metric"))
	assert.NoError(t, RequireUnique([]uuid.UUID{}, func(id uuid.UUID) uuid.UUID { return id }, "metric target", "metric"))

	err := RequireUnique([]uuid.UUID{a, b, a}, func(id uuid.UUID) uuid.UUID { return id }, "metric target", "metric")
	requireKind(t, err, domainerror.ErrDuplicateRecord, "metric target 3 metric")
	assert.Contains(t, err.Error(), "entry 1")
}

func TestRequireNotFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Minute)

	assert.NoError(t, RequireNotFuture(nil, now, "start time"))
	assert.NoError(t, RequireNotFuture(&past, now, "start time"))
	assert.NoError(t, RequireNotFuture(&now, now, "start time"))
	requireKind(t, RequireNotFuture(&future, now, "start time"), domainerror.ErrDateRangeInvalid, "start time")
}

func TestRequireOrdered(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := start.AddDate(0, 1, 0)
	same := start

	tests := []struct {
		name       string
		start, end *time.Time
		allowEqual bool
		wantErr    bool
	}{
		{name: "missing start", start: nil, end: &later, wantErr: false},
		{name: "missing end", start: &start, end: nil, wantErr: false},
		{name: "ordered", start: &start, end: &later, wantErr: false},
		{name: "reversed", start: &later, end: &start, allowEqual: true, wantErr: true},
		{name: "equal allowed", start: &start, end: &same, allowEqual: true, wantErr: false},
		{name: "equal strict", start: &start, end: &same, allowEqual: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOrdered(tt.start, tt.end, "start date", "target date", tt.allowEqual)
			if tt.wantErr {
				requireKind(t, err, domainerror.ErrDateRangeInvalid, "start date")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequirePresentAndNonZero(t *testing.T) {
	n := 3
	assert.NoError(t, RequirePresent(&n, "term number"))
	requireKind(t, RequirePresent[int](nil, "term number"), domainerror.ErrMissingRequiredField, "term number")

	assert.NoError(t, RequireNonZero(uuid.New(), "metric"))
	requireKind(t, RequireNonZero(uuid.Nil, "metric"), domainerror.ErrMissingRequiredField, "metric")

	ids := []uuid.UUID{uuid.New(), uuid.Nil}
	requireKind(t, RequireEachNonZero(ids, func(id uuid.UUID) uuid.UUID { return id }, "goal link", "goal"), domainerror.ErrMissingRequiredField, "goal link 2 goal")
}

func TestFirst(t *testing.T) {
	first := errors.New("first")
	assert.NoError(t, First(nil, nil))
	assert.Equal(t, first, First(nil, first, errors.New("second")))
}

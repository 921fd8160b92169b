package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg"
)

func compute(t *testing.T, name string, p models.Params) (float64, error) {
	t.Helper()
	op, ok := LookupOperation(name)
	require.True(t, ok, "operation %s registered", name)
	return op.Compute(p)
}

func TestOperations_Results(t *testing.T) {
	tests := []struct {
		op   string
		p    models.Params
		want float64
	}{
		{models.OpAdd, models.Params{N1: 5, N2: 3, Binary: true}, 8},
		{models.OpAdd, models.Params{N1: 0.1, N2: 0.2, Binary: true}, 0.30000000000000004},
		{models.OpSubtract, models.Params{N1: 5, N2: 8, Binary: true}, -3},
		{models.OpMultiply, models.Params{N1: -4, N2: 2.5, Binary: true}, -10},
		{models.OpDivide, models.Params{N1: 10, N2: 4, Binary: true}, 2.5},
		{models.OpDivide, models.Params{N1: 0, N2: 7, Binary: true}, 0},
		{models.OpPower, models.Params{N1: 2, N2: 10, Binary: true}, 1024},
		{models.OpPower, models.Params{N1: 4, N2: 0.5, Binary: true}, 2},
		{models.OpSqrt, models.Params{N1: 16}, 4},
		{models.OpSqrt, models.Params{N1: 0}, 0},
		{models.OpMod, models.Params{N1: 10, N2: 3, Binary: true}, 1},
		{models.OpMod, models.Params{N1: -10, N2: 3, Binary: true}, -1},
		{models.OpMod, models.Params{N1: 10, N2: -3, Binary: true}, 1},
		{models.OpMod, models.Params{N1: 5.5, N2: 2, Binary: true}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := compute(t, tt.op, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperations_DivisionByZero(t *testing.T) {
	for _, name := range []string{models.OpDivide, models.OpMod} {
		t.Run(name, func(t *testing.T) {
			_, err := compute(t, name, models.Params{N1: 10, N2: 0, Binary: true})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDivisor)
			assert.ErrorIs(t, err, pkg.ErrBadRequest)
			assert.Equal(t, "Invalid divisor: num2 cannot be zero.", err.Error())
		})
	}
}

func TestOperations_SqrtNegative(t *testing.T) {
	_, err := compute(t, models.OpSqrt, models.Params{N1: -4})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeOperand)
	assert.Equal(t, "Invalid parameter: num1 cannot be negative.", err.Error())
}

func TestOperations_PowerNonFinite(t *testing.T) {
	got, err := compute(t, models.OpPower, models.Params{N1: 10, N2: 400, Binary: true})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = compute(t, models.OpPower, models.Params{N1: -8, N2: 0.5, Binary: true})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestOperations_Registry(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 7)

	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide", "power", "sqrt", "mod"}, names)

	sqrt, ok := LookupOperation("sqrt")
	require.True(t, ok)
	assert.Equal(t, ArityUnary, sqrt.Arity)

	_, ok = LookupOperation("log")
	assert.False(t, ok)

	// Dönen slice kopyadır.
	ops[0].Name = "changed"
	first, _ := LookupOperation("add")
	assert.Equal(t, "add", first.Name)
}

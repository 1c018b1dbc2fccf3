package lib

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"7", 7},
		{"0", 0},
		{"2+3", 5},
		{"  2   +   3 ", 5},
		{"8 - 3 - 2", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"--5", 5},
		{"-(-5)", 5},
		{"+-3", -3},
		{"10 / 2 / 5", 1},
		{"2 * (3 + 4) - 5", 9},
		{"((((1))))", 1},
		{"1 + 2 * 3 - 4 / 2", 5},
	}
	for _, test := range tests {
		value, err := EvaluateExpression(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, value, "input %q", test.input)
	}
}

func TestEvaluateFloorDivision(t *testing.T) {
	// Division rounds toward negative infinity, like the // operator in
	// languages with floor division, not toward zero.
	tests := []struct {
		input string
		want  int64
	}{
		{"7 / 2", 3},
		{"-7 / 2", -4},
		{"7 / -2", -4},
		{"-7 / -2", 3},
		{"-8 / 2", -4},
		{"1 / 3", 0},
		{"-1 / 3", -1},
	}
	for _, test := range tests {
		value, err := EvaluateExpression(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, value, "input %q", test.input)
	}
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, int64(3), floorDiv(7, 2))
	require.Equal(t, int64(-4), floorDiv(-7, 2))
	require.Equal(t, int64(-4), floorDiv(7, -2))
	require.Equal(t, int64(3), floorDiv(-7, -2))
	require.Equal(t, int64(2), floorDiv(4, 2))
	require.Equal(t, int64(-2), floorDiv(-4, 2))
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := EvaluateExpression("5 / 0")
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = EvaluateExpression("1 + 2 / (3 - 3)")
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateUnaryOverNegativeResult(t *testing.T) {
	value, err := EvaluateExpression("-(2 - 5)")
	require.NoError(t, err)
	require.Equal(t, int64(3), value)
}

// Each call builds its own pipeline, so concurrent evaluations must not
// interfere with each other.
func TestEvaluateExpressionConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				value, err := EvaluateExpression("2 + 3 * 4")
				if err != nil {
					errs <- err
					return
				}
				if value != 14 {
					errs <- fmt.Errorf("got %d, want 14", value)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

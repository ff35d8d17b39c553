package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3DivChecked(t *testing.T) {
	got, err := v3(5, 3, 9).DivChecked(v3(1, 3, -3))
	require.NoError(t, err)
	require.Equal(t, v3(5, 1, -3), got)

	got, err = v3(5, 3, 9).DivChecked(v3(5, 0, 9))
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, Zero(), got)

	// Same underflow behavior as the panicking form.
	got, err = v3(1, 1, 1).DivChecked(v3(1e-200, 1e-200, 1))
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, Zero(), got)
}

func TestScalarDivChecked(t *testing.T) {
	got, err := DivChecked(v3(4, -0.9, 100000), 2)
	require.NoError(t, err)
	require.Equal(t, v3(2, -0.45, 50000), got)

	got, err = DivChecked(v3(4, -0.9, 100000), 0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, Zero(), got)
}

func TestNormalizeChecked(t *testing.T) {
	got, err := NormalizeChecked(v3(0, -3, 0))
	require.NoError(t, err)
	require.Equal(t, v3(0, -1, 0), got)

	got, err = NormalizeChecked(Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, Zero(), got)
}

func TestMust(t *testing.T) {
	require.Equal(t, v3(0, -1, 0), Must(NormalizeChecked(v3(0, -3, 0))))

	require.PanicsWithError(t, "linalg: division by zero", func() {
		Must(NormalizeChecked(Zero()))
	})
}

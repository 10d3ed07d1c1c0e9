package slideout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"40", Cells(40)},
		{"40px", Cells(40)},
		{"40c", Cells(40)},
		{" 30% ", Percent(30)},
		{"12.9", Cells(12)},
		{"-5", Cells(-5)},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "abc", "%", "NaN", "10em"} {
		_, err := ParseLength(bad)
		assert.ErrorIs(t, err, ErrInvalidSize, bad)
	}
}

func TestLengthResolve(t *testing.T) {
	assert.Equal(t, 30, Percent(30).Resolve(100))
	assert.Equal(t, 7, Percent(30).Resolve(24))
	assert.Equal(t, 40, Cells(40).Resolve(10))
	assert.Equal(t, Percent(-15), Percent(-30).Scale(0.5))
	assert.Equal(t, "0", Percent(0).String())
	assert.Equal(t, "-30%", Percent(30).Neg().String())
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("30%")
	require.NoError(t, err)
	assert.False(t, s.IsFixed())
	assert.Equal(t, Percent(30), s.Magnitude())

	s, err = ParseSize("40", "10")
	require.NoError(t, err)
	assert.True(t, s.IsFixed())
	assert.Equal(t, Cells(40), s.Width())
	assert.Equal(t, Cells(10), s.Height())
	assert.Equal(t, "[40,10]", s.String())

	s, err = ParseSize("[25%]")
	require.NoError(t, err)
	assert.True(t, s.IsFixed())
	assert.Equal(t, Percent(25), s.Height(), "single value applies to both axes")

	_, err = ParseSize("[]")
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = ParseSize("1", "2", "3")
	assert.ErrorIs(t, err, ErrInvalidSize)

	assert.True(t, SizeSpec{}.IsZero())
	assert.Equal(t, "30%", DefaultSize.String())
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("")
	require.NoError(t, err)
	assert.Equal(t, SideRight, side)

	side, err = ParseSide(" TOP ")
	require.NoError(t, err)
	assert.Equal(t, SideTop, side)

	_, err = ParseSide("center")
	assert.ErrorIs(t, err, ErrInvalidDock)

	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideBottom, SideTop.Opposite())
	assert.True(t, SideRight.Horizontal())
	assert.Equal(t, SideLeft, SideBottom.Cross())
}

func TestClasses(t *testing.T) {
	c := NewClasses("b", "", "a")
	c.Add("c")
	c.Remove("b")
	assert.Equal(t, []string{"a", "c"}, c.Names())
	assert.False(t, c.Has(""))
}

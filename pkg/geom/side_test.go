package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacingSide(t *testing.T) {
	r := R(0, 0, 100, 50)
	assert.Equal(t, SideE, FacingSide(r, Pt(300, 25)))
	assert.Equal(t, SideW, FacingSide(r, Pt(-300, 30)))
	assert.Equal(t, SideS, FacingSide(r, Pt(50, 200)))
	assert.Equal(t, SideN, FacingSide(r, Pt(60, -200)))
	assert.Equal(t, SideAuto, FacingSide(r, Pt(50, 25)))
}

func TestExitPoint(t *testing.T) {
	r := R(0, 0, 100, 50)
	assert.Equal(t, Pt(100, 25), ExitPoint(r, Pt(500, 30)))
	assert.Equal(t, Pt(50, 0), ExitPoint(r, Pt(50, -100)))
	assert.Equal(t, Pt(5, 5), ExitPoint(R(5, 5, 0, 0), Pt(50, 50)))
}

func TestSideText(t *testing.T) {
	for _, s := range []Side{SideAuto, SideN, SideE, SideS, SideW} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back Side
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	var s Side
	assert.Error(t, s.UnmarshalText([]byte("up")))
}

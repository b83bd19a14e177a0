package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 Segment
		want   Point
		wantOK bool
	}{
		{
			name:   "diagonals cross at center",
			s1:     seg(0, 0, 10, 10),
			s2:     seg(0, 10, 10, 0),
			want:   Point{X: 5, Y: 5},
			wantOK: true,
		},
		{
			name:   "parallel horizontal lines",
			s1:     seg(0, 0, 10, 0),
			s2:     seg(0, 1, 10, 1),
			wantOK: false,
		},
		{
			name:   "collinear non-overlapping",
			s1:     seg(0, 0, 1, 1),
			s2:     seg(5, 5, 6, 6),
			wantOK: false,
		},
		{
			name:   "collinear overlapping is treated as parallel",
			s1:     seg(0, 0, 4, 4),
			s2:     seg(2, 2, 6, 6),
			wantOK: false,
		},
		{
			name:   "lines cross outside first segment",
			s1:     seg(0, 0, 1, 1),
			s2:     seg(0, 10, 10, 0),
			wantOK: false,
		},
		{
			name:   "touching at endpoint counts",
			s1:     seg(0, 0, 5, 5),
			s2:     seg(5, 5, 10, 0),
			want:   Point{X: 5, Y: 5},
			wantOK: true,
		},
		{
			name:   "first segment degenerate",
			s1:     seg(3, 3, 3, 3),
			s2:     seg(0, 10, 10, 0),
			wantOK: false,
		},
		{
			name:   "second segment degenerate",
			s1:     seg(0, 0, 10, 10),
			s2:     seg(1, 1, 1, 1),
			wantOK: false,
		},
		{
			name:   "accumulation line meets horizontal embodied line",
			s1:     seg(0, 0, 99, 990),
			s2:     seg(0, 500, 99, 500),
			want:   Point{X: 50, Y: 500},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.s1, tt.s2)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			} else {
				assert.Equal(t, Point{}, got)
			}
		})
	}
}

func TestIntersect_Symmetric(t *testing.T) {
	s1 := seg(0, 0, 99, 9900)
	s2 := seg(0, 500, 99, 5450)

	p1, ok1 := Intersect(s1, s2)
	p2, ok2 := Intersect(s2, s1)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.InDelta(t, p1.X, p2.X, 1e-9)
	assert.InDelta(t, p1.Y, p2.Y, 1e-9)
	assert.InDelta(t, 10.0, p1.X, 1e-9)
}

package maze

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("even dimensions are forced odd", func(t *testing.T) {
		g, err := New(4, 4, rand.New(rand.NewSource(1)))
		assert.NoError(t, err)
		assert.Equal(t, 5, g.Height())
		assert.Equal(t, 5, g.Width())
	})

	t.Run("odd dimensions are kept", func(t *testing.T) {
		g, err := New(5, 9, nil)
		assert.NoError(t, err)
		assert.Equal(t, 5, g.Height())
		assert.Equal(t, 9, g.Width())
	})

	t.Run("degenerate dimensions are rejected", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 5}, {5, 1}, {0, 0}, {2, 1}, {-3, 9}} {
			_, err := New(dims[0], dims[1], nil)
			assert.ErrorIs(t, err, ErrDimensions, "dims %v", dims)
		}
	})

	t.Run("grid starts fully walled", func(t *testing.T) {
		g, err := New(5, 7, nil)
		assert.NoError(t, err)
		for _, row := range g.Grid() {
			for _, state := range row {
				assert.Equal(t, Wall, state)
			}
		}
	})
}

func TestGenerate(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 5}, {4, 4}, {9, 15}, {21, 11}}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			g, err := New(size[0], size[1], rand.New(rand.NewSource(42)))
			assert.NoError(t, err)
			g.Generate()

			assert.True(t, g.IsComplete())

			grid := g.Grid()
			h, w := g.Height(), g.Width()

			// Entrance and exit are carved on the borders.
			assert.Equal(t, Path, grid[0][1])
			assert.Equal(t, Path, grid[h-1][w-2])

			// Count interior wall-openings; no transient walk state may
			// survive generation.
			openings := 0
			for r := 0; r < h; r++ {
				for c := 0; c < w; c++ {
					assert.NotEqual(t, WorkingPath, grid[r][c])
					oddRow, oddCol := r%2 == 1, c%2 == 1
					if grid[r][c] == Path && oddRow != oddCol && r > 0 && r < h-1 {
						openings++
					}
				}
			}

			// A perfect maze is a spanning tree: openings = cells - 1.
			cells := (h / 2) * (w / 2)
			assert.Equal(t, cells-1, openings)
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	t.Run("same seed reproduces the maze", func(t *testing.T) {
		a, err := New(9, 9, rand.New(rand.NewSource(7)))
		assert.NoError(t, err)
		b, err := New(9, 9, rand.New(rand.NewSource(7)))
		assert.NoError(t, err)

		a.Generate()
		b.Generate()
		assert.Equal(t, a.Grid(), b.Grid())
	})

	t.Run("different seeds produce different mazes", func(t *testing.T) {
		a, err := New(9, 9, rand.New(rand.NewSource(1)))
		assert.NoError(t, err)
		b, err := New(9, 9, rand.New(rand.NewSource(2)))
		assert.NoError(t, err)

		a.Generate()
		b.Generate()
		assert.NotEqual(t, a.Grid(), b.Grid())
	})
}

func TestString(t *testing.T) {
	g, err := New(5, 5, rand.New(rand.NewSource(3)))
	assert.NoError(t, err)
	g.Generate()

	rendered := g.String()
	assert.Len(t, strings.Split(strings.TrimRight(rendered, "\n"), "\n"), 5)
	assert.NotContains(t, rendered, "..")
}

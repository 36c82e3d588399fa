package inspect_test

import (
	"fmt"

	"github.com/katalvlaran/cornerpoint/inspect"
	"github.com/katalvlaran/cornerpoint/synth"
)

// ExampleInspector demonstrates the full query surface on a small
// synthetic grid: a 2×2×2 box with 100×50 m cells of 10 m thickness,
// tilted 2% in the x-direction.
func ExampleInspector() {
	src, _ := synth.Box(2, 2, 2, 100, 50, 10, synth.WithXDip(0.02))
	ins, _ := inspect.New(src)

	sz := ins.GridSize()
	fmt.Println("cells:", sz.Cells())

	i, j, k := ins.ToLogicalCoords(5)
	fmt.Printf("cell 5 is (%d,%d,%d)\n", i, j, k)

	v, _ := ins.CellVolume(i, j, k)
	fmt.Printf("volume: %.0f\n", v)

	xdip, ydip, _ := ins.CellDips(i, j, k)
	fmt.Printf("dips: (%.2f, %.2f)\n", xdip, ydip)

	lim, _ := ins.GridLimits()
	fmt.Printf("x extent: [%.0f, %.0f]\n", lim.XMin, lim.XMax)

	// Output:
	// cells: 8
	// cell 5 is (1,0,1)
	// volume: 50000
	// dips: (0.02, 0.00)
	// x extent: [0, 200]
}

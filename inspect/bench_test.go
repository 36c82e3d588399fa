package inspect_test

import (
	"testing"

	"github.com/katalvlaran/cornerpoint/inspect"
	"github.com/katalvlaran/cornerpoint/synth"
)

// benchInspector builds a 100×100×10 box grid (100k cells, 800k depth
// values) once per benchmark.
func benchInspector(b *testing.B) *inspect.Inspector {
	b.Helper()
	src, err := synth.Box(100, 100, 10, 50, 50, 5)
	if err != nil {
		b.Fatalf("setup Box failed: %v", err)
	}
	ins, err := inspect.New(src)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return ins
}

// BenchmarkCellVolumeAt measures a full volume query including index
// conversion, per-call array fetch and size validation.
func BenchmarkCellVolumeAt(b *testing.B) {
	ins := benchInspector(b)
	cells := ins.GridSize().Cells()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := ins.CellVolumeAt(n % cells); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCellDips measures the dip query by logical coordinates.
func BenchmarkCellDips(b *testing.B) {
	ins := benchInspector(b)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, _, err := ins.CellDips(n%100, (n/100)%100, n%10); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGridLimits measures the full-array extent scan.
func BenchmarkGridLimits(b *testing.B) {
	ins := benchInspector(b)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := ins.GridLimits(); err != nil {
			b.Fatal(err)
		}
	}
}

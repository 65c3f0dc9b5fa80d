package evergreen

import "testing"

// BenchmarkBuildAndSort measures the per-frame cost of projecting and
// depth-sorting a full wide-class population.
func BenchmarkBuildAndSort(b *testing.B) {
	s := newScene(DefaultConfig(), 1280, 720, testRNG())
	mode := Mode{State: StateExploded}
	s.step(mode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.buildItems(mode)
		s.sortItems()
	}
}

// BenchmarkStep measures one physics tick over the full population.
func BenchmarkStep(b *testing.B) {
	s := newScene(DefaultConfig(), 1280, 720, testRNG())
	mode := Mode{State: StateExploded}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.step(mode)
	}
}

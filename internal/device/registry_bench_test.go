package device

import (
	"fmt"
	"testing"
)

// setupBenchRegistry creates a registry pre-populated with n devices.
func setupBenchRegistry(b *testing.B, n int) (*Registry, []Handle) {
	b.Helper()
	reg := NewRegistry()

	handles := make([]Handle, 0, n)
	for i := 0; i < n; i++ {
		var dev Device = NewSocket(fmt.Sprintf("socket-%04d", i))
		if i%3 == 0 {
			dev = NewThermometer(fmt.Sprintf("thermo-%04d", i))
		}
		h, err := reg.Add(dev)
		if err != nil {
			b.Fatalf("adding device %d: %v", i, err)
		}
		handles = append(handles, h)
	}
	return reg, handles
}

func BenchmarkRegistryGet(b *testing.B) {
	reg, handles := setupBenchRegistry(b, 100)
	h := handles[50]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Get(h) //nolint:errcheck // benchmark
	}
}

func BenchmarkRegistryFindByName(b *testing.B) {
	reg, _ := setupBenchRegistry(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.FindByName("socket-0098") //nolint:errcheck // benchmark
	}
}

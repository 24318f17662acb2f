package randutil

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("identical seeds must produce identical sequences")
		}
	}
}

func TestSequentialSeedsDiverge(t *testing.T) {
	t.Parallel()

	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Intn(52) == b.Intn(52) {
			same++
		}
	}
	if same == 100 {
		t.Fatal("adjacent seeds produced identical sequences")
	}
}

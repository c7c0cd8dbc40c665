package parallel

import (
	"sync"
	"testing"
)

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		y0, y1 int
		n      int
		want   []Band
	}{
		{"even", 0, 8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder first", 0, 10, 4, []Band{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"offset", 100, 103, 2, []Band{{100, 102}, {102, 103}}},
		{"more bands than rows", 0, 2, 8, []Band{{0, 1}, {1, 2}}},
		{"zero bands", 0, 5, 0, []Band{{0, 5}}},
		{"empty", 5, 5, 4, nil},
		{"inverted", 5, 2, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.y0, tt.y1, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestForRows_CoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	for _, p := range []*WorkerPool{nil, pool} {
		var mu sync.Mutex
		seen := make([]int, 50)
		ForRows(p, 0, 50, func(y0, y1 int) {
			mu.Lock()
			defer mu.Unlock()
			for y := y0; y < y1; y++ {
				seen[y]++
			}
		})
		for y, n := range seen {
			if n != 1 {
				t.Errorf("pool=%v: row %d visited %d times", p != nil, y, n)
			}
		}
	}
}

func TestForRows_Empty(t *testing.T) {
	called := false
	ForRows(nil, 3, 3, func(int, int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

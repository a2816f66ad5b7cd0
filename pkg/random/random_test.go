package random

import "testing"

func TestSelectRandomItems(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		n          int
		wantLen    int
	}{
		{name: "select 3 of 10", totalCount: 10, n: 3, wantLen: 3},
		{name: "select all", totalCount: 5, n: 5, wantLen: 5},
		{name: "select more than available", totalCount: 4, n: 9, wantLen: 4},
		{name: "zero requested", totalCount: 4, n: 0, wantLen: 0},
		{name: "empty source", totalCount: 0, n: 2, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				result := SelectRandomItems(tt.totalCount, tt.n)
				if len(result) != tt.wantLen {
					t.Fatalf("SelectRandomItems(%d, %d) returned %d items, want %d",
						tt.totalCount, tt.n, len(result), tt.wantLen)
				}

				seen := make(map[int]bool)
				for _, idx := range result {
					if idx < 0 || idx >= tt.totalCount {
						t.Errorf("SelectRandomItems(%d, %d) index %d out of range", tt.totalCount, tt.n, idx)
					}
					if seen[idx] {
						t.Errorf("SelectRandomItems(%d, %d) returned duplicate index %d", tt.totalCount, tt.n, idx)
					}
					seen[idx] = true
				}
			}
		})
	}
}

func TestPick(t *testing.T) {
	if _, ok := Pick([]string{}); ok {
		t.Error("Pick(empty) ok = true, want false")
	}

	items := []string{"coral", "teal", "blue"}
	for i := 0; i < 50; i++ {
		got, ok := Pick(items)
		if !ok {
			t.Fatal("Pick(items) ok = false, want true")
		}
		if got != "coral" && got != "teal" && got != "blue" {
			t.Errorf("Pick(items) = %q, not an element of items", got)
		}
	}
}

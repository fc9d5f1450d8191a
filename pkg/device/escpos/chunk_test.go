package escpos

import (
	"reflect"
	"testing"
)

func TestPlanChunks(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		limit   int
		overlap int
		want    []span
	}{
		{"short image", 100, 1024, 0, []span{{0, 100}}},
		{"exact fit", 1024, 1024, 0, []span{{0, 1024}}},
		{"exact multiple", 2048, 1024, 0, []span{{0, 1024}, {1024, 1024}}},
		{"tail", 2500, 1024, 0, []span{{0, 1024}, {1024, 1024}, {2048, 452}}},
		{"one past", 1025, 1024, 0, []span{{0, 1024}, {1024, 1}}},
		{"overlap", 2048, 1024, 128, []span{{0, 1024}, {896, 1024}, {1792, 256}}},
		{"overlap tail", 300, 256, 56, []span{{0, 256}, {200, 100}}},
		{"single row", 1, 32, 31, []span{{0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planChunks(tt.height, tt.limit, tt.overlap)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("planChunks(%d, %d, %d) = %v, want %v", tt.height, tt.limit, tt.overlap, got, tt.want)
			}
		})
	}
}

func TestPlanChunksCoverage(t *testing.T) {
	for height := 1; height <= 600; height += 13 {
		for _, limit := range []int{32, 64, 256} {
			for _, overlap := range []int{0, 8, limit - 1} {
				spans := planChunks(height, limit, overlap)
				if len(spans) == 0 {
					t.Fatalf("plan(%d, %d, %d) is empty", height, limit, overlap)
				}

				prev := -1
				covered := 0
				for _, sp := range spans {
					if sp.off <= prev {
						t.Fatalf("plan(%d, %d, %d): offsets not increasing: %v", height, limit, overlap, spans)
					}
					prev = sp.off

					if sp.rows < 1 || sp.rows > limit {
						t.Fatalf("plan(%d, %d, %d): span %v out of bounds", height, limit, overlap, sp)
					}
					if sp.off+sp.rows > height {
						t.Fatalf("plan(%d, %d, %d): span %v past the image", height, limit, overlap, sp)
					}
					if sp.off > covered {
						t.Fatalf("plan(%d, %d, %d): gap before %v", height, limit, overlap, sp)
					}
					if end := sp.off + sp.rows; end > covered {
						covered = end
					}
				}

				if covered != height {
					t.Fatalf("plan(%d, %d, %d) covers %d rows", height, limit, overlap, covered)
				}

				if overlap == 0 {
					if want := (height + limit - 1) / limit; len(spans) != want {
						t.Fatalf("plan(%d, %d, 0) has %d spans, want %d", height, limit, len(spans), want)
					}
				}
			}
		}
	}
}

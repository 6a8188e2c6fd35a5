package borders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/tilenav/pkg/datastructure"
)

const squarePoly = `square
1
   0.0 0.0
   1.0 0.0
   1.0 1.0
   0.0 1.0
   0.0 0.0
END
END
`

func writePoly(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "square.poly")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("err: %v", err)
	}
	return path
}

func TestLoadBorders(t *testing.T) {
	regions, err := LoadBorders(writePoly(t, squarePoly))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(regions))
	}
	if len(regions[0].GetPoints()) != 5 {
		t.Errorf("ring points = %d, want 5", len(regions[0].GetPoints()))
	}
}

func TestLoadBordersMissingFile(t *testing.T) {
	_, err := LoadBorders("/nonexistent/borders/nowhere.poly")
	if err == nil {
		t.Fatal("expected an error for a missing border file")
	}
}

func TestRegionContains(t *testing.T) {
	regions, err := LoadBorders(writePoly(t, squarePoly))
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	testCases := []struct {
		name  string
		point datastructure.Point
		want  bool
	}{
		{
			name:  "interior point",
			point: datastructure.NewPoint(0.5, 0.5),
			want:  true,
		},
		{
			name:  "point above the square",
			point: datastructure.NewPoint(0.5, 1.5),
			want:  false,
		},
		{
			name:  "point left of the square",
			point: datastructure.NewPoint(-0.5, 0.5),
			want:  false,
		},
		{
			name:  "point far away",
			point: datastructure.NewPoint(100, 100),
			want:  false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegionsContain(regions, tt.point); got != tt.want {
				t.Errorf("contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBorderPath(t *testing.T) {
	got := BorderPath("/data", "testland")
	want := filepath.Join("/data", "borders", "testland.poly")
	if got != want {
		t.Errorf("BorderPath = %q, want %q", got, want)
	}
}

package borders

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/geo"
	"github.com/lintang-b-s/tilenav/pkg/util"
)

const (
	BORDERS_DIR       = "borders"
	BORDERS_EXTENSION = ".poly"
)

// Region is one closed border ring in the planar map plane.
type Region struct {
	points []datastructure.Point
}

func NewRegion(points []datastructure.Point) *Region {
	return &Region{points: points}
}

func (r *Region) GetPoints() []datastructure.Point {
	return r.points
}

// Contains reports whether the point lies inside the ring, by ray
// crossing. Points on the boundary count as inside.
func (r *Region) Contains(p datastructure.Point) bool {
	n := len(r.points)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a := r.points[i]
		b := r.points[j]

		if onSegment(a, b, p) {
			return true
		}

		intersects := (a.GetY() > p.GetY()) != (b.GetY() > p.GetY()) &&
			p.GetX() < (b.GetX()-a.GetX())*(p.GetY()-a.GetY())/(b.GetY()-a.GetY())+a.GetX()
		if intersects {
			inside = !inside
		}
		j = i
	}
	return inside
}

func onSegment(a, b, p datastructure.Point) bool {
	cross := (b.GetX()-a.GetX())*(p.GetY()-a.GetY()) - (b.GetY()-a.GetY())*(p.GetX()-a.GetX())
	if !geo.Eq(cross, 0) {
		return false
	}
	if p.GetX() < min(a.GetX(), b.GetX())-geo.EPS || p.GetX() > max(a.GetX(), b.GetX())+geo.EPS {
		return false
	}
	if p.GetY() < min(a.GetY(), b.GetY())-geo.EPS || p.GetY() > max(a.GetY(), b.GetY())+geo.EPS {
		return false
	}
	return true
}

// RegionsContain reports whether any region contains the point.
func RegionsContain(regions []*Region, p datastructure.Point) bool {
	for _, region := range regions {
		if region.Contains(p) {
			return true
		}
	}
	return false
}

// BorderPath resolves the border polygon file of a country:
// <path>/borders/<country>.poly.
func BorderPath(path, country string) string {
	return filepath.Join(path, BORDERS_DIR, country+BORDERS_EXTENSION)
}

// LoadBorders parses an osm .poly file into its rings. Rings prefixed
// with '!' (holes) are skipped.
func LoadBorders(polyFile string) ([]*Region, error) {
	f, err := os.Open(polyFile)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIOFailure, "border file %q", polyFile)
	}
	defer f.Close()

	return parsePoly(bufio.NewReader(f), polyFile)
}

func parsePoly(br *bufio.Reader, polyFile string) ([]*Region, error) {
	// first line is the polygon name
	if _, err := util.ReadLine(br); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "border file %q name", polyFile)
	}

	regions := make([]*Region, 0, 1)
	for {
		header, err := util.ReadLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "border file %q", polyFile)
		}
		header = strings.TrimSpace(header)
		if header == "END" {
			// end of file marker
			break
		}
		if header == "" {
			continue
		}

		hole := strings.HasPrefix(header, "!")
		points, err := parseRing(br, polyFile)
		if err != nil {
			return nil, err
		}
		if !hole && len(points) >= 3 {
			regions = append(regions, NewRegion(points))
		}
	}
	return regions, nil
}

func parseRing(br *bufio.Reader, polyFile string) ([]datastructure.Point, error) {
	points := make([]datastructure.Point, 0, 16)
	for {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "border file %q ring", polyFile)
		}
		if strings.TrimSpace(line) == "END" {
			return points, nil
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadFormat, "border file %q vertex %q", polyFile, line)
		}
		lon, err := util.StringToFloat64(fields[0])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "border file %q vertex %q", polyFile, line)
		}
		lat, err := util.StringToFloat64(fields[1])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "border file %q vertex %q", polyFile, line)
		}

		x, y := geo.MercatorFromLatLon(geo.NewCoordinate(lat, lon))
		points = append(points, datastructure.NewPoint(x, y))
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lintang-b-s/tilenav/pkg/crossmwm"
	"github.com/lintang-b-s/tilenav/pkg/geo"
	"github.com/lintang-b-s/tilenav/pkg/logger"
	"github.com/lintang-b-s/tilenav/pkg/mwmfile"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// inspect prints the cross tile section of built archives, one block per
// file, with every transition's crossing segment as an encoded polyline.
func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: inspect <tile.mwm> [tile.mwm ...]\n")
		os.Exit(2)
	}

	files := os.Args[1:]
	reports := make([]string, len(files))

	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			report, err := inspectTile(file)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("inspect failed", zap.Error(err))
	}

	for _, report := range reports {
		fmt.Print(report)
	}
}

func inspectTile(mwmFile string) (string, error) {
	reader, err := mwmfile.OpenReader(mwmFile)
	if err != nil {
		return "", err
	}

	section, err := reader.GetReader(mwmfile.CROSS_MWM_FILE_TAG)
	if err != nil {
		return "", err
	}

	transitions, connectors, params, err := crossmwm.Deserialize(section)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d transitions, coord bits %d\n",
		mwmFile, len(transitions), params.GetCoordBits())

	for _, c := range connectors {
		fmt.Fprintf(&sb, "  %s: %d enters, %d exits, weights=%v\n",
			c.GetVehicleType(), len(c.GetEnters()), len(c.GetExits()), c.HasWeights())
	}

	for _, t := range transitions {
		back := geo.MercatorToLatLon(t.GetBackPoint().GetX(), t.GetBackPoint().GetY())
		front := geo.MercatorToLatLon(t.GetFrontPoint().GetX(), t.GetFrontPoint().GetY())
		encoded := polyline.EncodeCoords([][]float64{
			{back.Lat, back.Lon},
			{front.Lat, front.Lon},
		})
		fmt.Fprintf(&sb, "  fid=%d seg=%d enter=%v poly=%s\n",
			t.GetFeatureId(), t.GetSegmentIdx(), t.ForwardIsEnter(), string(encoded))
	}
	return sb.String(), nil
}

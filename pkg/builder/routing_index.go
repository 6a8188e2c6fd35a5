package builder

import (
	"os"

	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/indexgraph"
	"github.com/lintang-b-s/tilenav/pkg/mwmfile"
	"go.uber.org/zap"
)

// BuildRoutingIndex builds the routing section of one tile: the
// joint-indexed graph and the per-feature vehicle-mask table. The archive
// is only committed when every step succeeded, so a failed build leaves
// no partial section behind.
func BuildRoutingIndex(mwmFile, country string, source datastructure.FeatureSource,
	logger *zap.Logger) bool {
	logger.Info("building routing index", zap.String("file", mwmFile))

	processor, err := indexgraph.NewProcessor(country)
	if err != nil {
		logger.Error("building routing section failed", zap.Error(err))
		return false
	}

	if err := processor.ProcessAllFeatures(source); err != nil {
		logger.Error("building routing section failed", zap.Error(err))
		return false
	}

	graph := indexgraph.NewIndexGraph(nil, nil)
	processor.BuildGraph(graph)

	cont := mwmfile.NewWriter(mwmFile)
	if _, err := os.Stat(mwmFile); os.IsNotExist(err) {
		if err := mwmfile.WriteHeader(cont, mwmfile.DefaultCodingParams()); err != nil {
			logger.Error("building routing section failed", zap.Error(err))
			return false
		}
	}

	w, err := cont.GetWriter(mwmfile.ROUTING_FILE_TAG)
	if err != nil {
		logger.Error("building routing section failed", zap.Error(err))
		return false
	}

	startPos := w.Pos()
	if err := indexgraph.Serialize(graph, processor.GetMasks(), w); err != nil {
		logger.Error("building routing section failed", zap.Error(err))
		return false
	}
	sectionSize := w.Pos() - startPos

	if err := cont.Commit(); err != nil {
		logger.Error("building routing section failed", zap.Error(err))
		return false
	}

	logger.Info("routing section created",
		zap.Int64("bytes", sectionSize),
		zap.Int("roads", graph.GetNumRoads()),
		zap.Int("joints", graph.GetNumJoints()),
		zap.Int("points", graph.GetNumPoints()))
	return true
}

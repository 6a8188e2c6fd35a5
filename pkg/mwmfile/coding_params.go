package mwmfile

import "github.com/lintang-b-s/tilenav/pkg"

// CodingParams are the tile's geometry coding parameters. The routing
// core treats them as opaque and passes them through to serialisers.
type CodingParams struct {
	coordBits uint8
}

func NewCodingParams(coordBits uint8) CodingParams {
	return CodingParams{coordBits: coordBits}
}

func DefaultCodingParams() CodingParams {
	return CodingParams{coordBits: pkg.POINT_COORD_BITS}
}

func (c CodingParams) GetCoordBits() uint8 {
	return c.coordBits
}

// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by map builders, ensuring
// consistent defaults and validation across all constructors.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodEdge is the canonical name for the Edge constructor.
	MethodEdge = "Edge"
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSoup is the canonical name for the RandomSoup constructor.
	MethodRandomSoup = "RandomSoup"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinPolygonDarts is the smallest polygon: one dart whose beta_1 is itself.
const MinPolygonDarts = 1

// MinPathDarts is the smallest open path: one dart with free beta_0 and beta_1.
const MinPathDarts = 1

// MinGridDim is the smallest allowed rows or cols for Grid.
// A 1×1 grid is a single quad.
const MinGridDim = 1

// MinSoupDarts is the smallest dart budget of RandomSoup.
const MinSoupDarts = 1

// MinSewDimension is the smallest map dimension providing beta_2.
const MinSewDimension = 2

//-----------------------------------------------------------------------------
// Random soup shape
//-----------------------------------------------------------------------------

// MaxSoupPolygon bounds the length of a random soup polygon.
const MaxSoupPolygon = 6

// SoupEdgeOneIn makes roughly one soup piece in SoupEdgeOneIn a beta_2-linked
// two-dart edge instead of a polygon (maps of dimension ≥ 2 only).
const SoupEdgeOneIn = 4

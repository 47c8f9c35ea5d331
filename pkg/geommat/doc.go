// Package geommat classifies geometry material shader filenames and pairs
// vertex and fragment stages.
//
// A geometry material file is named
//
//	gm.<material>.<variant>.<stage>
//
// where stage is "vert" or "frag". Two files form a pair when they share
// material and variant and carry complementary stages:
//
//	gm.wood.01.vert  <->  gm.wood.01.frag
//
// The package level functions use DefaultConvention. A Convention loaded
// from configuration can change the namespace marker, separator, token
// count and stage suffixes.
package geommat

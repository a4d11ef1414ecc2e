// Package image implements the passive, in-memory layered image model:
// a sorted or RGBA-shaped channel set per layer, polymorphic sample
// storage (F16/F32/U32) optionally wrapped in a MIP/RIP resolution
// pyramid, allocation from a set of decoded headers, and the
// insert/extract glue that lets an *Image stand in directly for the
// line-level callbacks chunk.Scheduler drives.
//
// The model never touches the wire itself; it is built and consumed
// entirely in terms of the line package's Line/Geometry types and the
// header package's synthesized per-layer metadata.
package image

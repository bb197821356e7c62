// Package puzzle defines the format-agnostic model of a puzzle set, along
// with the Loader and Converter interfaces that concrete file formats (HCL,
// see internal/hcl) implement.
//
// The Set is the single input of the solver; nothing downstream of loading
// knows which file format a puzzle came from.
package puzzle

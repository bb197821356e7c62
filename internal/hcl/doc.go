// Package hcl provides the HCL implementation of the puzzle.Loader and
// puzzle.Converter interfaces. It is responsible for file discovery,
// parsing, translating HCL blocks into the puzzle model, compiling `match`
// expressions into predicates and converting solver output into cty values.
package hcl

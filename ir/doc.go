// Package ir provides the in-memory value tree of a Floyd datafile.
//
// A [Node] is one of null, bool, number, string, array or object, selected
// by its [Type]. Objects keep their keys in insertion order; each key is
// itself a string node in Fields, parallel to the values in Values.
//
// Numbers keep the exact kind they were written as: an integer that fits
// in an int64 is held in Int64, a larger integer as its decimal text in
// Number, and anything with a fraction or exponent in Float64.
//
// Every node knows its parent and its index within the parent, and, for
// object values, the key it is stored under. Nodes produced by the parser
// also carry an ID, numbered from 1 in document order, which is used to
// look up source positions.
package ir

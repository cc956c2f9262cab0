// Package libdiff compares PSON value trees.
//
// Diff walks two trees and reports the members and elements which were
// inserted, deleted or replaced, each with its path in ir/kpath syntax.
// Object members are matched by name and array elements by a summary of
// their type and scalar value, using the diff-match-patch sequence diff, so
// an insertion in the middle of an array is reported as one insert rather
// than as a replacement of every later element.
//
// Text produces a line diff of two texts, typically JSON renderings.
package libdiff

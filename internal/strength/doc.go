// Package strength scores generated values.
//
// There is exactly one scoring heuristic. It bands the value by length
// (8, 12, 16) and promotes it one band when at least three character classes
// are present. The resulting level is stored in history as a slug such as
// "very-strong".
package strength

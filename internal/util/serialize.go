package util

import "github.com/kr/pretty"

// Pretty formats v for debug logs.
func Pretty(v interface{}) string {
	return pretty.Sprint(v)
}

// Diff lists the field-level differences between want and got. It is empty
// when both are deeply equal.
func Diff(want, got interface{}) []string {
	return pretty.Diff(want, got)
}

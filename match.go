package filekit

import "regexp"

// Matches reports whether pattern matches anywhere in text. The pattern is
// compiled on every call. A pattern that does not compile returns a
// [*CompileError].
func Matches(text, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, &CompileError{Pattern: pattern, Err: err}
	}
	return re.MatchString(text), nil
}

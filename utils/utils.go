package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// MissingStrings returns the members of wanted that are absent from have,
// in the order of wanted.
func MissingStrings(wanted []string, have []string) []string {
	var missing []string
	for _, w := range wanted {
		if !StringInSlice(w, have) {
			missing = append(missing, w)
		}
	}
	return missing
}

func Repeat(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TrimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}

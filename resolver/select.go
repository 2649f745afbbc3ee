package resolver

import "github.com/tranvictor/lensens/lens"

// SelectValue returns the value of the first attribute whose key is key.
// Duplicated keys are not an error, the earliest one wins.
func SelectValue(attrs []lens.Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

//go:build !windows

package runner

// Command returns the plain tool name. Only Windows hosts a registry; off
// Windows the name is resolved through PATH, which serves test and
// development contexts.
func Command() string {
	return "reg"
}

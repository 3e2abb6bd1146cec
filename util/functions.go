package util

import (
	"fmt"
	"os"
	"path"
)

func RangeInt(to int) []int {
	retval := make([]int, to)
	for i := 0; i < to; i++ {
		retval[i] = i
	}
	return retval
}

func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// LocateFile searches for a file as given and in each of the
// supplied prefix directories, returning the first hit.
func LocateFile(filename string, dirs []string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no file name given")
	}
	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}
	for _, dir := range dirs {
		candidate := path.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("file %s not found in %v", filename, dirs)
}

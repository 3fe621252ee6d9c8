package env

import (
	"os"
	"strconv"
)

func Test() bool {
	return os.Getenv("TEST_MODE") != ""
}

func Debug() bool {
	return os.Getenv("LAYR_DEBUG") != "" || os.Getenv("DEBUG") != ""
}

// MaxDimension returns the canvas size limit from LAYR_MAX_DIMENSION if set.
func MaxDimension() (int, bool) {
	if s := os.Getenv("LAYR_MAX_DIMENSION"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil && i > 0 {
			return int(i), true
		}
	}
	return -1, false
}

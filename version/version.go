package version

import (
	"fmt"
	"io"
)

// Version represents a version of httpui
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Current returns current version of httpui
func Current() *Version {
	return &Version{major: 0, minor: 4, patch: 0}
}

func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "httpui %s\n", Current())
}

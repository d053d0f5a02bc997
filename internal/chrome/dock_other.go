//go:build !darwin

package chrome

import "runtime"

type genericPlatform struct {
	Base
}

// Current returns the platform of this build.
func Current() Platform { return genericPlatform{} }

func (genericPlatform) Name() string { return runtime.GOOS }

package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies an operating system an environment is built for.
type Platform string

const (
	// PlatformLinux is the Linux platform.
	PlatformLinux Platform = "Linux"
	// PlatformDarwin is the macOS platform.
	PlatformDarwin Platform = "Darwin"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformDarwin, PlatformLinux}

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform converts a platform name to a Platform. Matching is case-insensitive.
func ParsePlatform(name string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "unknown platform name"), "platform", name)
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() (Platform, error) {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "linux":
		return PlatformLinux, nil
	case "darwin":
		return PlatformDarwin, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "unsupported execution platform"), "goos", goos)
	}
}

// FreezeStrategy selects how an environment is captured.
type FreezeStrategy int

const (
	// StrategySameHost resolves with the local package manager.
	StrategySameHost FreezeStrategy = iota
	// StrategyContainer resolves inside a disposable Linux container.
	StrategyContainer
)

// SelectFreezeStrategy returns the capture procedure for an execution/target pair.
// Matching platforms resolve locally; a Linux target from any other host resolves
// in a container. Every other pair fails with ErrUnsupportedPlatformPair.
func SelectFreezeStrategy(execution, target Platform) (FreezeStrategy, error) {
	if execution == target {
		return StrategySameHost, nil
	}
	if target == PlatformLinux {
		return StrategyContainer, nil
	}

	err := zerr.Wrap(ErrUnsupportedPlatformPair, "no freeze procedure for platform pair")
	err = zerr.With(err, "execution_platform", execution.String())
	return StrategySameHost, zerr.With(err, "target_platform", target.String())
}

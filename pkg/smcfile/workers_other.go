//go:build !linux && !darwin

package smcfile

func detectPerfCores() int { return 0 }

package smcfile

import "runtime"

// maxLoadWorkers bounds the loader pool regardless of core count; each
// worker holds a whole decompressed contig in memory.
const maxLoadWorkers = 32

// DetectWorkers returns the loader worker count: the machine's
// performance-core count where detectable, otherwise all logical CPUs.
func DetectWorkers() int {
	w := detectPerfCores()
	if w < 1 {
		w = runtime.NumCPU()
	}
	if w > maxLoadWorkers {
		w = maxLoadWorkers
	}
	return w
}

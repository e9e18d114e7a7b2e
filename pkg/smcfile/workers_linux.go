//go:build linux

package smcfile

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// detectPerfCores probes /proc/cpuinfo for hybrid architectures: on
// P-core/E-core CPUs only the high-frequency cores are counted, since the
// loader is decompression-bound. Returns 0 when the topology looks
// homogeneous or cannot be read.
func detectPerfCores() int {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	// Max observed frequency per physical core id.
	coreFreq := make(map[int]float64)
	coreID := -1
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "core id":
			if id, err := strconv.Atoi(value); err == nil {
				coreID = id
			}
		case "cpu MHz":
			if freq, err := strconv.ParseFloat(value, 64); err == nil && coreID >= 0 {
				if freq > coreFreq[coreID] {
					coreFreq[coreID] = freq
				}
			}
		}
	}
	if len(coreFreq) < 3 {
		return 0
	}

	var sum float64
	for _, freq := range coreFreq {
		sum += freq
	}
	avg := sum / float64(len(coreFreq))

	fast := 0
	for _, freq := range coreFreq {
		if freq >= avg*0.9 {
			fast++
		}
	}
	if fast > 0 && fast < len(coreFreq) {
		return fast
	}
	return 0
}

package smcfile

import (
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/popgenlab/smcprep/pkg/smcprep"
)

// Result is one loaded data file.
type Result struct {
	Path   string
	Header Header
	Contig *smcprep.Contig
}

// LoadAll reads data files in parallel with a bounded worker pool,
// preserving input order. workers <= 0 selects the detected performance
// core count. Each worker owns the contigs it produces; nothing is shared
// until the pool has drained. The first error encountered is returned.
func LoadAll(files []string, workers int) ([]Result, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = DetectWorkers()
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	results := make([]Result, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := Open(files[i])
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = Result{Path: files[i], Header: r.Header(), Contig: r.Contig()}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("Loaded %d contigs with %d workers", len(files), workers)
	return results, nil
}

// ExpandFileArgs expands @list arguments into the file names the list
// contains, one per line, dropping duplicates while preserving first-seen
// order.
func ExpandFileArgs(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(fn string) {
		if _, dup := seen[fn]; dup {
			return
		}
		seen[fn] = struct{}{}
		out = append(out, fn)
	}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			add(arg)
			continue
		}
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				add(line)
			}
		}
	}
	return out, nil
}

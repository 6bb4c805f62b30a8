package scanner

import (
	"sync"

	"github.com/reem-012/gpg-checker/internal/report"
)

// Driver runs the classifier over a list of paths and collects the report.
type Driver struct {
	Classifier Classifier

	// Workers is the classification fan-out. Values below 2 mean
	// sequential, in-order classification.
	Workers int
}

// Scan classifies every path and returns one result per path. The report
// order always equals the input (discovery) order: parallel workers write
// into index-addressed slots, so fan-out never reorders output.
func (d Driver) Scan(paths []string) report.Report {
	results := make(report.Report, len(paths))

	if d.Workers < 2 {
		for i, path := range paths {
			results[i] = d.Classifier.Classify(path)
		}
		return results
	}

	type job struct {
		index int
		path  string
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	workers := d.Workers
	if workers > len(paths) {
		workers = len(paths)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = d.Classifier.Classify(j.path)
			}
		}()
	}

	for i, path := range paths {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return results
}

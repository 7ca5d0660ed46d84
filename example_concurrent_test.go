// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer goroutines.
// Shared synchronizes through atomix acquire-release operations that the
// race detector cannot see, so these examples are excluded from race testing.

package encq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/encq"
	"code.hybscloud.com/encq/codec"
	"code.hybscloud.com/iox"
)

// Example_workerPool distributes encoded jobs to workers through Shared.
func Example_workerPool() {
	type Job struct {
		ID    int `json:"id"`
		Input int `json:"in"`
	}

	jobs := encq.NewShared[Job](codec.JSON[Job]{})
	results := make([]int, 5)
	var wg sync.WaitGroup
	var completed atomix.Int32

	// Start 3 workers
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for completed.Load() < 5 {
				job, err := jobs.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				results[job.ID] = job.Input * job.Input
				completed.Add(1)
			}
		}()
	}

	// Submit 5 jobs
	for i := range 5 {
		jobs.Enqueue(&Job{ID: i, Input: i + 1})
	}

	wg.Wait()
	fmt.Println(results)

	// Output:
	// [1 4 9 16 25]
}

// ExampleShared collects log lines from several producers.
func ExampleShared() {
	q := encq.BuildShared[string](encq.New(512).Shared(), codec.String{})

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			line := fmt.Sprintf("line from producer %d", id)
			q.Enqueue(&line)
		}(p)
	}
	wg.Wait()

	fmt.Println("queued:", q.Len())
	for {
		line, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(line)
	}

	// Unordered output:
	// queued: 3
	// line from producer 0
	// line from producer 1
	// line from producer 2
}

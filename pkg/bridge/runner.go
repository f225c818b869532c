package bridge

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// RunAll launches every task concurrently and waits for all of them to reach
// a terminal state. Individual failures are logged and collected, never
// propagated to sibling tasks; the batch always finishes.
func RunAll(ctx context.Context, log zerolog.Logger, tasks []*Task) []Result {
	results := make([]Result, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task *Task) {
			defer wg.Done()
			results[i] = task.Run(ctx)
		}(i, task)
	}
	wg.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Error().
				Err(res.Err).
				Str("wallet", res.Wallet.Hex()).
				Msg("wallet task failed")
		}
	}

	log.Info().
		Int("wallets", len(results)).
		Int("failed", failed).
		Msg("*** FINISHED ***")

	return results
}

package engine_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/compiler"
	"github.com/ironautomata/eudoxus/engine"
)

// TestConcurrentStatesOverSharedEngine verifies an Engine loaded once is
// safe for many goroutines to scan concurrently, each with its own State:
// Engine holds no mutable scan state, so independent States never race
// with each other.
func TestConcurrentStatesOverSharedEngine(t *testing.T) {
	a := buildChainOfLength(32)
	res, err := compiler.Compile(a)
	require.NoError(t, err)
	eng, err := engine.Load(res.Image)
	require.NoError(t, err)

	input := make([]byte, 32)
	for i := range input {
		input[i] = byte('a' + i%26)
	}
	wantMatch := fmt.Sprintf("match-%d", 32)

	const goroutines = 64
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			st, err := eng.CreateState(nil)
			require.NoError(t, err)

			var matched string
			result, n, err := st.Execute(input, func(content []byte) engine.Signal {
				matched = string(content)
				return engine.SignalContinue
			})
			require.NoError(t, err)
			require.Equal(t, engine.ResultOK, result)
			require.Equal(t, len(input), n)
			require.Equal(t, wantMatch, matched)
		}()
	}
	wg.Wait()
}

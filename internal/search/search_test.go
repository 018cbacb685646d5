package search

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/strandsearch/internal/matcher"
	"github.com/dreamware/strandsearch/internal/matchset"
)

func randomDNA(rng *rand.Rand, n int, alphabet string) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return text
}

// singleThreaded is the reference result: one scan of the whole text
func singleThreaded(text, pattern []byte) []int {
	return matchset.Finalize(matcher.FindAll(matcher.Naive{}, text, pattern, 0, len(text)))
}

func TestRunOnceScenarios(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		threads  []int
		expected []int
	}{
		{
			name:     "pattern repeated at boundary",
			text:     "tgttaaattgttaaatt",
			pattern:  "tgttaaatt",
			threads:  []int{1, 2, 4, 17, 32},
			expected: []int{0, 8},
		},
		{
			name:     "occurrence straddling the split",
			text:     "aaaaa",
			pattern:  "aaa",
			threads:  []int{1, 2, 3, 5, 8},
			expected: []int{0, 1, 2},
		},
		{
			name:     "self overlap",
			text:     "aaa",
			pattern:  "aa",
			threads:  []int{1, 2, 3},
			expected: []int{0, 1},
		},
		{
			name:     "single byte pattern",
			text:     "acgtacgtaa",
			pattern:  "a",
			threads:  []int{1, 3, 10},
			expected: []int{0, 4, 8, 9},
		},
		{
			name:     "empty text",
			text:     "",
			pattern:  "acg",
			threads:  []int{1, 4},
			expected: nil,
		},
		{
			name:     "pattern longer than text",
			text:     "acg",
			pattern:  "acgt",
			threads:  []int{1, 2},
			expected: nil,
		},
		{
			name:     "empty pattern",
			text:     "acgt",
			pattern:  "",
			threads:  []int{1, 2},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, n := range tt.threads {
				run := s.RunOnce([]byte(tt.text), []byte(tt.pattern), n)

				assert.Equal(t, n, run.Threads)
				if len(tt.expected) == 0 {
					assert.Empty(t, run.Offsets, "threads=%d", n)
				} else {
					assert.Equal(t, tt.expected, run.Offsets, "threads=%d", n)
				}
			}
		})
	}
}

func TestRunOnceDegenerateThreads(t *testing.T) {
	s := New()

	for _, n := range []int{0, -1, -100} {
		run := s.RunOnce([]byte("tgttaaattgttaaatt"), []byte("tgttaaatt"), n)
		assert.Equal(t, 1, run.Threads)
		assert.Equal(t, []int{0, 8}, run.Offsets)
	}
}

func TestPartitionInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	s := New()

	for round := 0; round < 50; round++ {
		text := randomDNA(rng, rng.IntN(2000), "ac")
		pattern := randomDNA(rng, 1+rng.IntN(8), "ac")
		want := singleThreaded(text, pattern)

		for _, n := range []int{1, 2, 3, 7, 16, 64} {
			run := s.RunOnce(text, pattern, n)
			if len(want) == 0 {
				require.Empty(t, run.Offsets, "round=%d threads=%d", round, n)
				continue
			}
			require.Equal(t, want, run.Offsets, "round=%d threads=%d pattern=%q", round, n, pattern)
		}
	}
}

func TestCollectorIsResetBetweenRuns(t *testing.T) {
	m := matchset.New()
	s := New(WithCollector(func() matchset.Collector { return m }))

	first := s.RunOnce([]byte("acgtacgt"), []byte("acg"), 2)
	assert.Equal(t, []int{0, 4}, first.Offsets)
	assert.Zero(t, m.Len(), "collector should be empty after the run")

	// A second run on different input sees nothing from the first
	second := s.RunOnce([]byte("ttttacg"), []byte("acg"), 3)
	assert.Equal(t, []int{4}, second.Offsets)

	// Earlier results are not aliased by the reused collector
	assert.Equal(t, []int{0, 4}, first.Offsets)
}

func TestBitmapCollector(t *testing.T) {
	s := New(WithCollector(func() matchset.Collector { return matchset.NewBitmap() }))

	run := s.RunOnce([]byte("tgttaaattgttaaatt"), []byte("tgttaaatt"), 4)
	assert.Equal(t, []int{0, 8}, run.Offsets)
}

func TestAlternateMatcher(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	text := randomDNA(rng, 5000, "acgt")
	pattern := []byte("acg")

	naive := New().RunOnce(text, pattern, 8)
	index := New(WithMatcher(matcher.Index{})).RunOnce(text, pattern, 8)

	assert.Equal(t, naive.Offsets, index.Offsets)
}

// duplicatingMatcher reports every occurrence twice to exercise dedup
type duplicatingMatcher struct{}

func (duplicatingMatcher) Find(text, pattern []byte, start, end int, emit func(int)) {
	matcher.Naive{}.Find(text, pattern, start, end, func(o int) {
		emit(o)
		emit(o)
	})
}

func TestDuplicatesAreRemoved(t *testing.T) {
	s := New(WithMatcher(duplicatingMatcher{}))

	run := s.RunOnce([]byte("aaaaa"), []byte("aaa"), 2)
	assert.Equal(t, []int{0, 1, 2}, run.Offsets)
	assert.Equal(t, 6, run.Raw)
}

func TestReporterCalledOnceWithFinalResult(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []Run
	)
	s := New(WithReporter(func(r Run) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, r)
	}))

	run := s.RunOnce([]byte("tgttaaattgttaaatt"), []byte("tgttaaatt"), 4)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, run, calls[0])
	assert.Equal(t, []int{0, 8}, calls[0].Offsets)
}

// recordingObserver captures observer calls
type recordingObserver struct {
	mu      sync.Mutex
	threads []int
	matches []int
}

func (o *recordingObserver) RecordRun(threads int, _ time.Duration, matches int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.threads = append(o.threads, threads)
	o.matches = append(o.matches, matches)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	s := New(WithObserver(obs))

	s.RunOnce([]byte("aaa"), []byte("aa"), 1)
	s.RunOnce([]byte("aaa"), []byte("aa"), 2)

	assert.Equal(t, []int{1, 2}, obs.threads)
	assert.Equal(t, []int{2, 2}, obs.matches)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))

	s.RunOnce([]byte("aaa"), []byte("aa"), 2)

	assert.Contains(t, buf.String(), "search run completed")
	assert.Contains(t, buf.String(), "matches=2")
}

func TestIndependentSearchersRunConcurrently(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	texts := make([][]byte, 8)
	want := make([][]int, len(texts))
	pattern := []byte("aca")
	for i := range texts {
		texts[i] = randomDNA(rng, 3000, "ac")
		want[i] = singleThreaded(texts[i], pattern)
	}

	var wg sync.WaitGroup
	got := make([][]int, len(texts))
	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = New().RunOnce(texts[i], pattern, 1+i).Offsets
		}(i)
	}
	wg.Wait()

	for i := range texts {
		assert.Equal(t, want[i], got[i], "searcher %d", i)
	}
}

func TestSharedSearcherSerializesRuns(t *testing.T) {
	s := New()
	text := []byte("tgttaaattgttaaatt")
	pattern := []byte("tgttaaatt")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			run := s.RunOnce(text, pattern, n)
			assert.Equal(t, []int{0, 8}, run.Offsets)
		}(1 + i%5)
	}
	wg.Wait()
}

func TestPatternIsNotShared(t *testing.T) {
	text := []byte("acgtacgt")
	pattern := []byte("acg")
	patternPtr := &pattern[0]

	var seen []*byte
	var mu sync.Mutex
	spy := matcherFunc(func(text, p []byte, start, end int, emit func(int)) {
		mu.Lock()
		seen = append(seen, &p[0])
		mu.Unlock()
		matcher.Naive{}.Find(text, p, start, end, emit)
	})

	New(WithMatcher(spy)).RunOnce(text, pattern, 3)

	require.Len(t, seen, 3)
	for _, p := range seen {
		assert.NotSame(t, patternPtr, p, "worker received the caller's pattern buffer")
	}
}

type matcherFunc func(text, pattern []byte, start, end int, emit func(int))

func (f matcherFunc) Find(text, pattern []byte, start, end int, emit func(int)) {
	f(text, pattern, start, end, emit)
}

func BenchmarkRunOnce(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	text := randomDNA(rng, 1<<22, "acgt")
	pattern := []byte("tgttaaatt")

	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("threads-%d", n), func(b *testing.B) {
			s := New()
			b.SetBytes(int64(len(text)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.RunOnce(text, pattern, n)
			}
		})
	}
}

package ranking

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// entry is one non-zero component of a sparse vector.
type entry struct {
	term   int
	weight float64
}

// vector is sparse, sorted by term index and L2-normalized.
// A zero vector has no entries.
type vector []entry

type space struct {
	terms   []string
	idf     []float64
	vectors []vector
}

// build vectorizes texts. Tokenizing and weighting run per document on the
// worker pool; vocabulary and document frequencies are aggregated in between.
func (e *Engine) build(ctx context.Context, texts []string) (*space, error) {
	counts := make([]map[string]int, len(texts))
	if err := e.parallel(ctx, len(texts), func(i int) {
		counts[i] = termCounts(e.tokenizer.Tokenize(truncate(texts[i], e.maxChars)))
	}); err != nil {
		return nil, err
	}

	df := make(map[string]int)
	for _, c := range counts {
		for term := range c {
			df[term]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(texts))
	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		index[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]vector, len(texts))
	if err := e.parallel(ctx, len(texts), func(i int) {
		vectors[i] = weigh(counts[i], index, idf)
	}); err != nil {
		return nil, err
	}
	return &space{terms: terms, idf: idf, vectors: vectors}, nil
}

func (e *Engine) parallel(ctx context.Context, n int, fn func(i int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}

func termCounts(tokens []string) map[string]int {
	out := make(map[string]int, len(tokens))
	for _, t := range tokens {
		out[t]++
	}
	return out
}

func weigh(counts map[string]int, index map[string]int, idf []float64) vector {
	v := make(vector, 0, len(counts))
	for term, tf := range counts {
		i := index[term]
		v = append(v, entry{term: i, weight: float64(tf) * idf[i]})
	}
	sort.Slice(v, func(a, b int) bool { return v[a].term < v[b].term })

	var sum float64
	for _, en := range v {
		sum += en.weight * en.weight
	}
	if sum == 0 {
		return vector{}
	}
	norm := math.Sqrt(sum)
	for k := range v {
		v[k].weight /= norm
	}
	return v
}

// dot is the inner product of two sorted sparse vectors.
func dot(a, b vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].term == b[j].term:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].term < b[j].term:
			i++
		default:
			j++
		}
	}
	return sum
}

// truncate cuts s to at most n runes; n <= 0 keeps s whole.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

package rag

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"customer-support-agents/pkg/log"
	"customer-support-agents/pkg/qdrant"
	"customer-support-agents/pkg/voyage"
)

const (
	// DefaultTopK is the default number of chunks per query.
	DefaultTopK = 5

	// DefaultMinScore filters out weak matches.
	DefaultMinScore = 0.3

	// embedCacheSize bounds the query-embedding cache. Validation suites
	// replay the same questions repeatedly, so the hit rate is high there.
	embedCacheSize = 256
)

// vectorSearcher is the slice of the Qdrant client the retriever needs.
type vectorSearcher interface {
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

// VectorRetriever embeds the query with Voyage and searches Qdrant.
type VectorRetriever struct {
	embedder   voyage.IVoyage
	vector     vectorSearcher
	collection string
	topK       int
	minScore   float64
	embedCache *lru.Cache[string, []float32]
	l          log.Logger
}

var _ Retriever = (*VectorRetriever)(nil)

// Config holds retriever settings.
type Config struct {
	Collection string
	TopK       int     // defaults to DefaultTopK
	MinScore   float64 // defaults to DefaultMinScore
}

// New creates a VectorRetriever.
func New(embedder voyage.IVoyage, vector vectorSearcher, cfg Config, l log.Logger) (*VectorRetriever, error) {
	if cfg.Collection == "" {
		return nil, fmt.Errorf("rag: collection is required")
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}

	cache, err := lru.New[string, []float32](embedCacheSize)
	if err != nil {
		return nil, fmt.Errorf("rag: failed to create embedding cache: %w", err)
	}

	return &VectorRetriever{
		embedder:   embedder,
		vector:     vector,
		collection: cfg.Collection,
		topK:       cfg.TopK,
		minScore:   cfg.MinScore,
		embedCache: cache,
		l:          l,
	}, nil
}

// RetrieveWithSources implements Retriever.
func (r *VectorRetriever) RetrieveWithSources(ctx context.Context, query string) ([]Chunk, []string, error) {
	embedding, err := r.embedQuery(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("internal.rag.RetrieveWithSources: embed query: %w", err)
	}

	resp, err := r.vector.SearchPoints(ctx, r.collection, qdrant.SearchRequest{
		Vector:         embedding,
		Limit:          r.topK,
		WithPayload:    true,
		ScoreThreshold: r.minScore,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("internal.rag.RetrieveWithSources: vector search: %w", err)
	}

	var chunks []Chunk
	var sources []string
	seen := make(map[string]bool)

	for _, point := range resp.Result {
		chunk := Chunk{Score: point.Score}
		if text, ok := point.Payload["text"].(string); ok {
			chunk.Text = text
		}
		if url, ok := point.Payload["url"].(string); ok {
			chunk.URL = url
			if url != "" && !seen[url] {
				seen[url] = true
				sources = append(sources, url)
			}
		}
		chunks = append(chunks, chunk)
	}

	r.l.Debugf(ctx, "internal.rag.RetrieveWithSources: query=%q chunks=%d sources=%d",
		truncate(query, 80), len(chunks), len(sources))

	return chunks, sources, nil
}

func (r *VectorRetriever) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if cached, ok := r.embedCache.Get(query); ok {
		return cached, nil
	}

	embeddings, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	r.embedCache.Add(query, embeddings[0])
	return embeddings[0], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

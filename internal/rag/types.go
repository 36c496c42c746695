package rag

import "context"

// Chunk is one retrieved documentation fragment.
type Chunk struct {
	Text  string
	URL   string
	Score float64
}

// Retriever is the retrieval boundary the knowledge handler depends on.
// Ingestion (scraping, chunking, upserting) lives outside this service.
type Retriever interface {
	// RetrieveWithSources returns relevant chunks for the query plus the
	// deduplicated source URLs they came from.
	RetrieveWithSources(ctx context.Context, query string) ([]Chunk, []string, error)
}

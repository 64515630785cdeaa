package fetcher

import (
	"context"
)

// MetadataFetcher retrieves the full station metadata document.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context) ([]byte, error)
}

// FeedFetcher retrieves one station's realtime standard met feed.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, station string) (string, error)
}

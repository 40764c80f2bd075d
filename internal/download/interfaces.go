package download

import (
	"context"

	"github.com/ytget/stream-grabber/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.Track))
	Download(ctx context.Context, url string) (*model.Track, error)
}

// Metadata is the subset of extractor info used to name the output file.
type Metadata struct {
	Title    string
	Uploader string
}

// Extractor is the media-extraction boundary: a metadata lookup that does not
// download, and a fetch that writes transcoded audio to outputTemplate.
type Extractor interface {
	Lookup(ctx context.Context, url string) (*Metadata, error)
	Fetch(ctx context.Context, url, outputTemplate string) error
}

var _ Downloader = (*Service)(nil)

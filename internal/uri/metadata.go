package uri

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/types"
)

// MetadataFetcher defines the interface for fetching token metadata documents
//
//go:generate mockgen -source=metadata.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=MetadataFetcher=MockMetadataFetcher
type MetadataFetcher interface {
	// Fetch resolves a token URI and returns the metadata document
	// Data URIs are decoded inline; ipfs:// and ar:// URIs are resolved
	// through the configured gateways before fetching. When a plain HTTP(S)
	// URL fails and is a recognized gateway URL, the fetch is retried
	// through the other configured gateways.
	Fetch(ctx context.Context, tokenURI string) (json.RawMessage, error)
}

type metadataFetcher struct {
	resolver       Resolver
	dataURIChecker DataURIChecker
	httpClient     adapter.HTTPClient
	config         *Config
}

// NewMetadataFetcher creates a new metadata fetcher
func NewMetadataFetcher(resolver Resolver, dataURIChecker DataURIChecker, httpClient adapter.HTTPClient, config *Config) MetadataFetcher {
	return &metadataFetcher{
		resolver:       resolver,
		dataURIChecker: dataURIChecker,
		httpClient:     httpClient,
		config:         config,
	}
}

// Fetch resolves a token URI and returns the metadata document
func (f *metadataFetcher) Fetch(ctx context.Context, tokenURI string) (json.RawMessage, error) {
	if tokenURI == "" {
		return nil, fmt.Errorf("empty token URI")
	}

	// Inline metadata is decoded without any network access
	if types.IsDataURI(tokenURI) {
		result := f.dataURIChecker.Check(tokenURI)
		if !result.Valid {
			return nil, fmt.Errorf("invalid metadata data URI: %s", types.SafeString(result.Error))
		}
		return json.RawMessage(result.Document), nil
	}

	resolved, err := f.resolver.Resolve(ctx, tokenURI)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token URI: %w", err)
	}

	var document json.RawMessage
	err = f.httpClient.Get(ctx, resolved, &document)
	if err == nil {
		return document, nil
	}

	// The direct URL failed; when it points at a known gateway type, retry
	// through the other configured gateways
	fallbackURL, ok := f.findGatewayFallback(ctx, resolved)
	if !ok {
		return nil, fmt.Errorf("failed to fetch metadata from %s: %w", resolved, err)
	}

	logger.InfoCtx(ctx, "Metadata fetch failed, retrying through a fallback gateway",
		zap.String("url", resolved), zap.String("fallback", fallbackURL), zap.Error(err))

	if err := f.httpClient.Get(ctx, fallbackURL, &document); err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from %s: %w", fallbackURL, err)
	}
	return document, nil
}

// findGatewayFallback probes the configured gateways when a failed URL is a
// recognized IPFS or Arweave gateway URL and returns a working alternative
func (f *metadataFetcher) findGatewayFallback(ctx context.Context, failedURL string) (string, bool) {
	if ok, cidPath := types.IsIPFSGatewayURL(failedURL); ok {
		workingURL, err := FindWorkingIPFSGateway(ctx, f.httpClient, cidPath, f.config.IPFSGateways)
		if err != nil {
			return "", false
		}
		return workingURL, true
	}

	if ok, _ := types.IsArweaveGatewayURL(failedURL); ok {
		u, err := url.Parse(failedURL)
		if err != nil {
			return "", false
		}
		// Keep the full resource path so subpaths survive the gateway swap
		resource := strings.TrimPrefix(u.Path, "/")
		workingURL, err := FindWorkingArweaveGateway(ctx, f.httpClient, resource, f.config.ArweaveGateways)
		if err != nil {
			return "", false
		}
		return workingURL, true
	}

	return "", false
}

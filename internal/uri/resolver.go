package uri

import (
	"context"
	"strings"

	"github.com/feral-file/ff-mintgate/internal/adapter"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try
	ArweaveGateways []string
}

// Resolver defines the interface for resolving token URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves a token URI to a fetchable URL
	// It handles the ipfs:// and ar:// schemes by probing the configured
	// gateways with HEAD requests and returns the first accessible gateway
	// URL; plain HTTP(S) URLs pass through unchanged
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	// Handle IPFS URIs
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return FindWorkingIPFSGateway(ctx, r.httpClient, cid, r.config.IPFSGateways)
	}

	// Handle Arweave URIs
	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return FindWorkingArweaveGateway(ctx, r.httpClient, txID, r.config.ArweaveGateways)
	}

	// Regular HTTP(S) URL
	return uri, nil
}

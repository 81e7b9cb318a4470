package uri_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-mintgate/internal/mocks"
	"github.com/feral-file/ff-mintgate/internal/uri"
)

func TestMetadataFetcher_Fetch(t *testing.T) {
	metadataDoc := `{"name":"Genesis #1","image":"ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.png"}`

	headResp := func(status int) *http.Response {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}
	}
	returnDocument := func(doc string) func(context.Context, string, interface{}) error {
		return func(_ context.Context, _ string, result interface{}) error {
			raw, ok := result.(*json.RawMessage)
			if !ok {
				return assert.AnError
			}
			*raw = json.RawMessage(doc)
			return nil
		}
	}

	tests := []struct {
		name        string
		tokenURI    string
		config      *uri.Config
		setupMocks  func(*mocks.MockHTTPClient)
		expected    string
		expectedErr string
	}{
		{
			name:     "data URI metadata",
			tokenURI: "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte(metadataDoc)),
			config:   &uri.Config{},
			expected: metadataDoc,
		},
		{
			name:        "invalid data URI",
			tokenURI:    "data:text/plain,hello",
			config:      &uri.Config{},
			expectedErr: "invalid metadata data URI",
		},
		{
			name:        "empty token URI",
			tokenURI:    "",
			config:      &uri.Config{},
			expectedErr: "empty token URI",
		},
		{
			name:     "plain HTTPS URL",
			tokenURI: "https://example.com/metadata/1.json",
			config:   &uri.Config{},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://example.com/metadata/1.json", gomock.Any()).
					DoAndReturn(returnDocument(metadataDoc))
			},
			expected: metadataDoc,
		},
		{
			name:     "IPFS URI resolved through gateway",
			tokenURI: "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.json",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.json").
					Return(headResp(http.StatusOK), nil)
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.json", gomock.Any()).
					DoAndReturn(returnDocument(metadataDoc))
			},
			expected: metadataDoc,
		},
		{
			name:     "IPFS URI resolve failure",
			tokenURI: "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{},
			},
			expectedErr: "failed to resolve token URI",
		},
		{
			name:     "dead IPFS gateway URL retried through configured gateways",
			tokenURI: "https://dead-gateway.example.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://dead-gateway.example.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", gomock.Any()).
					Return(assert.AnError)
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(headResp(http.StatusOK), nil)
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", gomock.Any()).
					DoAndReturn(returnDocument(metadataDoc))
			},
			expected: metadataDoc,
		},
		{
			name:     "dead Arweave gateway URL keeps the resource path",
			tokenURI: "https://arweave.net/sKqjvP7jFwM5HLZmyJQC_9l5hN7TVIYhT6MvSHDqwo0/metadata.json",
			config: &uri.Config{
				ArweaveGateways: []string{"https://ar-io.net"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://arweave.net/sKqjvP7jFwM5HLZmyJQC_9l5hN7TVIYhT6MvSHDqwo0/metadata.json", gomock.Any()).
					Return(assert.AnError)
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ar-io.net/sKqjvP7jFwM5HLZmyJQC_9l5hN7TVIYhT6MvSHDqwo0/metadata.json").
					Return(headResp(http.StatusOK), nil)
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://ar-io.net/sKqjvP7jFwM5HLZmyJQC_9l5hN7TVIYhT6MvSHDqwo0/metadata.json", gomock.Any()).
					DoAndReturn(returnDocument(metadataDoc))
			},
			expected: metadataDoc,
		},
		{
			name:     "plain URL fetch failure has no fallback",
			tokenURI: "https://example.com/metadata/1.json",
			config:   &uri.Config{},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://example.com/metadata/1.json", gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to fetch metadata from https://example.com/metadata/1.json",
		},
		{
			name:     "gateway fallback probe failure returns the original error",
			tokenURI: "https://dead-gateway.example.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Get(gomock.Any(), "https://dead-gateway.example.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", gomock.Any()).
					Return(assert.AnError)
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(headResp(http.StatusNotFound), nil)
			},
			expectedErr: "failed to fetch metadata from https://dead-gateway.example.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			fetcher := uri.NewMetadataFetcher(
				uri.NewResolver(mockHTTP, tt.config),
				uri.NewDataURIChecker(),
				mockHTTP,
				tt.config,
			)
			document, err := fetcher.Fetch(context.Background(), tt.tokenURI)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, document)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, string(document))
			}
		})
	}
}

package uri

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/feral-file/ff-mintgate/internal/types"
)

// DataURICheckResult represents the result of validating a metadata data URI
type DataURICheckResult struct {
	Valid            bool
	Error            *string
	MimeType         string // Detected mime type from content
	DeclaredMimeType string // Declared mime type in URI
	Document         []byte // Decoded metadata document when valid
}

// DataURIChecker defines the interface for checking metadata data URIs
//
//go:generate mockgen -source=data_uri_checker.go -destination=../mocks/data_uri_checker.go -package=mocks -mock_names=DataURIChecker=MockDataURIChecker
type DataURIChecker interface {
	// Check validates a metadata data URI according to RFC 2397
	// It checks:
	// 1. Format follows RFC 2397
	// 2. Mime type declares a JSON document
	// 3. Content matches the declared mime type using magic numbers
	Check(dataURI string) DataURICheckResult
}

type dataURIChecker struct{}

// NewDataURIChecker creates a new data URI checker
func NewDataURIChecker() DataURIChecker {
	return &dataURIChecker{}
}

// Check validates a metadata data URI
func (c *dataURIChecker) Check(dataURI string) DataURICheckResult {
	// 1. Parse the data URI
	parsed, err := types.ParseDataURI(dataURI)
	if err != nil {
		errMsg := err.Error()
		return DataURICheckResult{
			Valid: false,
			Error: &errMsg,
		}
	}

	// 2. Validate the declared mime type is a JSON document type
	if !isJSONMimeType(parsed.MimeType) {
		errMsg := fmt.Sprintf("unsupported mime type: %s (only JSON metadata documents are supported)", parsed.MimeType)
		return DataURICheckResult{
			Valid:            false,
			Error:            &errMsg,
			DeclaredMimeType: parsed.MimeType,
		}
	}

	// 3. Verify the data is not empty
	if len(parsed.DecodedData) == 0 {
		errMsg := "invalid data URI: empty data"
		return DataURICheckResult{
			Valid:            false,
			Error:            &errMsg,
			DeclaredMimeType: parsed.MimeType,
		}
	}

	// 4. Detect actual mime type from content using magic numbers
	detectedMime := mimetype.Detect(parsed.DecodedData)
	detectedMimeType := detectedMime.String()

	// 5. Check if declared mime type matches detected mime type
	if !mimeTypesMatch(parsed.MimeType, detectedMimeType) {
		errMsg := fmt.Sprintf("mime type mismatch: declared %s but detected %s", parsed.MimeType, detectedMimeType)
		return DataURICheckResult{
			Valid:            false,
			Error:            &errMsg,
			DeclaredMimeType: parsed.MimeType,
			MimeType:         detectedMimeType,
		}
	}

	return DataURICheckResult{
		Valid:            true,
		MimeType:         detectedMimeType,
		DeclaredMimeType: parsed.MimeType,
		Document:         parsed.DecodedData,
	}
}

// isJSONMimeType checks if a mime type declares a JSON document
func isJSONMimeType(mimeType string) bool {
	base := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	return base == "application/json" || base == "text/json"
}

// mimeTypesMatch checks if the declared and detected mime types match
// It performs a flexible comparison that accounts for:
// - Case differences
// - The legacy text/json alias for application/json
func mimeTypesMatch(declared, detected string) bool {
	declared = strings.ToLower(strings.TrimSpace(declared))
	detected = strings.ToLower(strings.TrimSpace(detected))

	// Exact match
	if declared == detected {
		return true
	}

	// Handle the legacy alias: text/json and application/json are equivalent
	if (declared == "text/json" && detected == "application/json") ||
		(declared == "application/json" && detected == "text/json") {
		return true
	}

	// Extract base type without parameters (e.g., "application/json; charset=utf-8" -> "application/json")
	declaredBase := strings.Split(declared, ";")[0]
	detectedBase := strings.Split(detected, ";")[0]

	return strings.TrimSpace(declaredBase) == strings.TrimSpace(detectedBase)
}

package types

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsNumeric checks if a string is a valid non-negative numeric value
func IsNumeric(s string) bool {
	regex := regexp.MustCompile(`^[0-9]+$`)
	return regex.MatchString(s)
}

// IsPositiveNumeric checks if a string is a valid positive numeric value
func IsPositiveNumeric(s string) bool {
	regex := regexp.MustCompile(`^[1-9][0-9]*$`)
	return regex.MatchString(s)
}

// IsValidURL checks if a string is a valid HTTP or HTTPS URL
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHTTPSURL checks if a string is a valid HTTPS URL
func IsHTTPSURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

// IsIPFSGatewayURL checks if a URL is an IPFS gateway URL and extracts the
// CID path when it is. The returned path keeps any subpath after the CID
// (e.g. "QmXxx/image.png") so the resource can be refetched through another
// gateway.
func IsIPFSGatewayURL(s string) (bool, string) {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.User != nil {
		return false, ""
	}

	cidPath, ok := strings.CutPrefix(u.Path, "/ipfs/")
	if !ok || cidPath == "" {
		return false, ""
	}

	cid := cidPath
	if i := strings.IndexByte(cidPath, '/'); i >= 0 {
		cid = cidPath[:i]
	}
	if !isValidCID(cid) {
		return false, ""
	}

	return true, cidPath
}

// isValidCID checks if a string looks like an IPFS CIDv0 or CIDv1
func isValidCID(s string) bool {
	// CIDv0: "Qm" followed by 44 base58btc characters
	cidV0 := regexp.MustCompile(`^Qm[1-9A-HJ-NP-Za-km-z]{44}$`)
	// CIDv1: "baf" prefix, base32 lowercase
	cidV1 := regexp.MustCompile(`^baf[a-z2-7]{50,}$`)
	return cidV0.MatchString(s) || cidV1.MatchString(s)
}

// IsArweaveGatewayURL checks if a URL is an Arweave gateway URL and extracts
// the transaction ID when it is
func IsArweaveGatewayURL(s string) (bool, string) {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.User != nil {
		return false, ""
	}

	txID := strings.TrimPrefix(u.Path, "/")
	if i := strings.IndexByte(txID, '/'); i >= 0 {
		txID = txID[:i]
	}

	// Arweave transaction IDs are 43 base64url characters
	regex := regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)
	if !regex.MatchString(txID) {
		return false, ""
	}

	return true, txID
}

// GenerateUUID generates a random UUID string
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

// GenerateSecureToken generates a cryptographically random token of the
// given byte length, hex encoded
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType    string
	Base64      bool
	DecodedData []byte
}

// IsDataURI checks if a string is a data URI
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURI parses an RFC 2397 data URI
// Format: data:[<mediatype>][;base64],<data>
func ParseDataURI(s string) (*DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, fmt.Errorf("invalid data URI: must start with 'data:'")
	}

	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URI format: missing comma separator")
	}

	mimeType := ""
	isBase64 := false
	for i, part := range strings.Split(meta, ";") {
		part = strings.TrimSpace(part)
		switch {
		case i == 0:
			mimeType = part
		case part == "base64":
			isBase64 = true
		}
	}
	if mimeType == "" {
		// RFC 2397 default
		mimeType = "text/plain"
	}

	var decoded []byte
	if isBase64 {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		decoded = b
	} else {
		unescaped, err := url.PathUnescape(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode percent encoding: %w", err)
		}
		decoded = []byte(unescaped)
	}

	return &DataURI{
		MimeType:    mimeType,
		Base64:      isBase64,
		DecodedData: decoded,
	}, nil
}

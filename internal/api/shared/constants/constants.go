package constants

const (
	MAX_PAGE_SIZE              = 100
	DEFAULT_OFFSET             = uint64(0)
	DEFAULT_LIMIT              = 20
	MAX_EVENT_FILTERS          = 20
	DEFAULT_RETRY_MAX_ATTEMPTS = 5
	MAX_RETRY_MAX_ATTEMPTS     = 10

	// WEBHOOK_SECRET_BYTES is the entropy of a generated webhook signing
	// secret; the secret is issued hex-encoded
	WEBHOOK_SECRET_BYTES = 32
)

package domain

const (
	// Blockchain constants
	ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// DEFAULT_TOKEN_DECIMALS is the display precision used when a token
	// deployment does not specify one
	DEFAULT_TOKEN_DECIMALS = 18
)

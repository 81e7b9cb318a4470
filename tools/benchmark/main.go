package main

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/api/shared/dto"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
)

const (
	defaultAPIURL = "http://localhost:8080"
	funderKeyEnv  = "MINTGATE_FUNDER_KEY"
)

type Config struct {
	APIURL          string
	Contract        string
	FunderKey       string
	AuthHeader      string        // Full Authorization header value (optional)
	Accounts        int           // Number of minting accounts to generate
	MintsPerAccount int           // Mint envelopes each account submits
	Quantity        uint64        // Tokens per mint envelope
	Concurrency     int           // Number of concurrent submitters
	RequestTimeout  time.Duration // Timeout for each API request
	OutputFile      string        // Output markdown file path (optional)
	Debug           bool
}

// minter is one generated account. Its envelopes are submitted in nonce
// order, so an account is the unit of work for the submitter pool.
type minter struct {
	key     *ecdsa.PrivateKey
	address string
}

// submitOutcome records one submitted envelope
type submitOutcome struct {
	latency time.Duration
	status  string
	reason  string
	err     error
}

// runStats aggregates the mint phase. Latencies cover committed envelopes
// only (accepted and reverted both reach the engine); transport errors are
// counted but excluded from the percentiles.
type runStats struct {
	wallTime  time.Duration
	submitted int
	accepted  int
	reverted  int
	errored   int
	reasons   map[string]int
	latencies []time.Duration
}

func main() {
	cfg := parseFlags()

	if cfg.Contract == "" {
		fmt.Println("Error: contract is required")
		flag.Usage()
		os.Exit(1)
	}
	if cfg.FunderKey == "" {
		fmt.Printf("Error: funder key is required (-funder-key or %s)\n", funderKeyEnv)
		flag.Usage()
		os.Exit(1)
	}

	funder, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.FunderKey, "0x"))
	if err != nil {
		fmt.Printf("Error parsing funder key: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	bench := &benchClient{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		authHeader: cfg.AuthHeader,
		client:     &http.Client{Timeout: cfg.RequestTimeout},
		canon:      adapter.NewJCS(),
	}

	if err := bench.health(ctx); err != nil {
		fmt.Printf("Error reaching API at %s: %v\n", cfg.APIURL, err)
		os.Exit(1)
	}
	fmt.Printf("Connected to API at %s\n", cfg.APIURL)

	target, err := bench.contract(ctx, cfg.Contract)
	if err != nil {
		fmt.Printf("Error fetching contract %s: %v\n", cfg.Contract, err)
		os.Exit(1)
	}
	if target.Collection == nil {
		fmt.Printf("Error: %s is a %s contract, not a collection\n", cfg.Contract, target.Kind)
		os.Exit(1)
	}
	if target.Collection.Paused {
		fmt.Printf("Error: collection %s is paused, every mint would revert\n", cfg.Contract)
		os.Exit(1)
	}
	unitPrice, ok := domain.ParseAmount(target.Collection.UnitPrice)
	if !ok {
		fmt.Printf("Error: unparseable unit price: %s\n", target.Collection.UnitPrice)
		os.Exit(1)
	}

	planned := cfg.Accounts * cfg.MintsPerAccount
	mintCost := mintValue(unitPrice, cfg.Quantity)
	perAccount := new(big.Int).Mul(mintCost, big.NewInt(int64(cfg.MintsPerAccount)))

	fmt.Printf("Target collection: %s (%s), unit price %s, remaining supply %d\n",
		target.Name, target.Symbol, target.Collection.UnitPrice, target.Collection.RemainingSupply)
	fmt.Printf("Plan: %d accounts x %d mints x quantity %d = %d envelopes\n",
		cfg.Accounts, cfg.MintsPerAccount, cfg.Quantity, planned)

	if cfg.Quantity > collection.MaxPerMint {
		fmt.Printf("⚠️  Quantity %d exceeds the per-mint limit of %d, every mint will revert\n",
			cfg.Quantity, collection.MaxPerMint)
	}
	if uint64(planned)*cfg.Quantity > target.Collection.RemainingSupply {
		fmt.Printf("⚠️  Plan exceeds the remaining supply of %d, late mints will revert\n",
			target.Collection.RemainingSupply)
	}

	fmt.Printf("\nGenerating %d accounts...\n", cfg.Accounts)
	minters, err := generateMinters(cfg.Accounts)
	if err != nil {
		fmt.Printf("Error generating accounts: %v\n", err)
		os.Exit(1)
	}

	if err := fundAccounts(ctx, bench, funder, minters, perAccount); err != nil {
		fmt.Printf("\nError funding accounts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSubmitting mints with %d workers...\n", cfg.Concurrency)
	stats := runMintPhase(ctx, bench, cfg, minters, mintCost)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printRunStats(stats, planned)

	// Write to markdown file if specified
	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cfg, target, stats, planned); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.APIURL, "api-url", defaultAPIURL, "Base URL of the API server")
	flag.StringVar(&cfg.Contract, "contract", "", "Collection contract address to mint from (required)")
	flag.StringVar(&cfg.FunderKey, "funder-key", "", "Hex private key of the funding account (or env "+funderKeyEnv+")")
	flag.StringVar(&cfg.AuthHeader, "auth", "", "Authorization header value, e.g. 'APIKey <key>' (optional)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&cfg.Accounts, "accounts", 10, "Number of minting accounts to generate (default: 10)")
	flag.IntVar(&cfg.MintsPerAccount, "mints", 10, "Mint envelopes per account (default: 10)")
	flag.Uint64Var(&cfg.Quantity, "quantity", 1, "Tokens per mint envelope (default: 1)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent submitters (default: 5)")

	var requestTimeoutSeconds int
	flag.IntVar(&requestTimeoutSeconds, "request-timeout", 30, "Timeout for each API request in seconds (default: 30)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.RequestTimeout = time.Duration(requestTimeoutSeconds) * time.Second

	if cfg.Accounts <= 0 {
		cfg.Accounts = 10
	}
	if cfg.MintsPerAccount <= 0 {
		cfg.MintsPerAccount = 10
	}
	if cfg.Quantity == 0 {
		cfg.Quantity = 1
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	// An account is the unit of work, extra workers would idle
	if cfg.Concurrency > cfg.Accounts {
		cfg.Concurrency = cfg.Accounts
	}

	if cfg.FunderKey == "" {
		cfg.FunderKey = os.Getenv(funderKeyEnv)
	}

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.APIURL == defaultAPIURL && fileCfg.APIURL != "" {
				cfg.APIURL = fileCfg.APIURL
			}
			if cfg.Contract == "" && fileCfg.Contract != "" {
				cfg.Contract = fileCfg.Contract
			}
			if cfg.FunderKey == "" && fileCfg.FunderKey != "" {
				cfg.FunderKey = fileCfg.FunderKey
			}
			if cfg.AuthHeader == "" && fileCfg.AuthHeader != "" {
				cfg.AuthHeader = fileCfg.AuthHeader
			}
		}
	}

	return cfg
}

// mintValue returns the exact payment for quantity tokens at unitPrice.
// The engine rejects any other attached value.
func mintValue(unitPrice *big.Int, quantity uint64) *big.Int {
	return new(big.Int).Mul(unitPrice, new(big.Int).SetUint64(quantity))
}

func generateMinters(n int) ([]minter, error) {
	minters := make([]minter, n)
	for i := range minters {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		minters[i] = minter{
			key:     key,
			address: crypto.PubkeyToAddress(key.PublicKey).String(),
		}
	}
	return minters, nil
}

// fundAccounts moves enough native currency from the funder to every
// minting account. Transfers carry consecutive funder nonces, so they are
// submitted sequentially.
func fundAccounts(ctx context.Context, bench *benchClient, funder *ecdsa.PrivateKey, minters []minter, amount *big.Int) error {
	funderAddr := crypto.PubkeyToAddress(funder.PublicKey).String()
	account, err := bench.account(ctx, funderAddr)
	if err != nil {
		return fmt.Errorf("failed to fetch funder account: %w", err)
	}

	balance, ok := domain.ParseAmount(account.Balance)
	if !ok {
		return fmt.Errorf("unparseable funder balance: %s", account.Balance)
	}
	required := new(big.Int).Mul(amount, big.NewInt(int64(len(minters))))
	if balance.Cmp(required) < 0 {
		return fmt.Errorf("funder balance %s is below the required %s", account.Balance, required.String())
	}

	nonce := account.Nonce
	for i := range minters {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		tx := &engine.Tx{
			Action:   domain.ActionNativeTransfer,
			Contract: minters[i].address,
			Value:    amount.String(),
			Nonce:    nonce,
		}
		if err := tx.Sign(funder, bench.canon); err != nil {
			return fmt.Errorf("failed to sign funding transfer: %w", err)
		}

		receipt, err := bench.submit(ctx, tx)
		if err != nil {
			return fmt.Errorf("funding transfer %d/%d failed: %w", i+1, len(minters), err)
		}
		if receipt.Status != string(domain.TxStatusSuccess) {
			return fmt.Errorf("funding transfer %d/%d reverted: %s", i+1, len(minters), receipt.Reason)
		}

		nonce++
		fmt.Printf("\r⏳ Funding accounts... (%d/%d)", i+1, len(minters))
	}

	fmt.Printf("\r✓ Funded %d accounts with %s each                    \n", len(minters), amount.String())
	return nil
}

// runMintPhase fans the accounts out over the submitter pool and collects
// every outcome. An account is one pool task: its nonces are walked in order
// inside the task, so at most Concurrency accounts are in flight at once.
func runMintPhase(ctx context.Context, bench *benchClient, cfg *Config, minters []minter, value *big.Int) *runStats {
	params, _ := json.Marshal(collection.MintParams{Quantity: cfg.Quantity})
	total := len(minters) * cfg.MintsPerAccount

	outcomes := make(chan submitOutcome, cfg.Concurrency)

	start := time.Now()

	pool := pond.NewPool(
		cfg.Concurrency,
		pond.WithContext(ctx),
	)
	for i := range minters {
		pool.Submit(func() {
			mintAll(ctx, bench, cfg, &minters[i], params, value, outcomes)
		})
	}

	go func() {
		pool.StopAndWait()
		close(outcomes)
	}()

	stats := &runStats{reasons: make(map[string]int)}
	for outcome := range outcomes {
		stats.submitted++
		switch {
		case outcome.err != nil:
			stats.errored++
			if cfg.Debug {
				fmt.Printf("submit error: %v\n", outcome.err)
			}
		case outcome.status == string(domain.TxStatusSuccess):
			stats.accepted++
			stats.latencies = append(stats.latencies, outcome.latency)
		default:
			stats.reverted++
			stats.latencies = append(stats.latencies, outcome.latency)
			if outcome.reason != "" {
				stats.reasons[outcome.reason]++
			}
		}
		if !cfg.Debug {
			fmt.Printf("\r⏳ Minting... (%d/%d)", stats.submitted, total)
		}
	}
	stats.wallTime = time.Since(start)

	fmt.Printf("\r✓ Mint phase complete (%d/%d submitted)                    \n", stats.submitted, total)
	return stats
}

// mintAll submits one account's mints in nonce order. A transport error
// aborts the account's remaining mints: the outcome of the lost envelope is
// unknown, so subsequent local nonces may already be consumed.
func mintAll(ctx context.Context, bench *benchClient, cfg *Config, m *minter, params json.RawMessage, value *big.Int, outcomes chan<- submitOutcome) {
	for nonce := uint64(0); nonce < uint64(cfg.MintsPerAccount); nonce++ {
		if ctx.Err() != nil {
			return
		}

		tx := &engine.Tx{
			Action:   domain.ActionCollectionMint,
			Contract: cfg.Contract,
			Params:   params,
			Value:    value.String(),
			Nonce:    nonce,
		}
		if err := tx.Sign(m.key, bench.canon); err != nil {
			outcomes <- submitOutcome{err: fmt.Errorf("failed to sign mint: %w", err)}
			return
		}

		startReq := time.Now()
		receipt, err := bench.submit(ctx, tx)
		latency := time.Since(startReq)

		if err != nil {
			outcomes <- submitOutcome{latency: latency, err: err}
			return
		}
		outcomes <- submitOutcome{latency: latency, status: receipt.Status, reason: receipt.Reason}
	}
}

func printRunStats(stats *runStats, planned int) {
	emoji := statusEmoji(stats.accepted, stats.reverted, stats.errored)

	fmt.Printf("\n%s Submitted: %d/%d\n", emoji, stats.submitted, planned)
	fmt.Printf("   Accepted:   %d (%s)\n", stats.accepted, percentageString(stats.accepted, stats.submitted))
	fmt.Printf("   Reverted:   %d (%s)\n", stats.reverted, percentageString(stats.reverted, stats.submitted))
	fmt.Printf("   Errors:     %d (%s)\n", stats.errored, percentageString(stats.errored, stats.submitted))
	fmt.Printf("   Wall time:  %s\n", formatDuration(stats.wallTime))
	fmt.Printf("   Throughput: %s\n", formatRate(stats.submitted, stats.wallTime))

	if len(stats.latencies) > 0 {
		sorted := make([]time.Duration, len(stats.latencies))
		copy(sorted, stats.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum time.Duration
		for _, l := range sorted {
			sum += l
		}
		avg := sum / time.Duration(len(sorted))

		fmt.Printf("\n   Latency (committed envelopes):\n")
		fmt.Printf("     min: %s  avg: %s  p50: %s  p95: %s  p99: %s  max: %s\n",
			formatDuration(sorted[0]), formatDuration(avg),
			formatDuration(percentile(sorted, 50)), formatDuration(percentile(sorted, 95)),
			formatDuration(percentile(sorted, 99)), formatDuration(sorted[len(sorted)-1]))
	}

	if len(stats.reasons) > 0 {
		fmt.Printf("\n   Revert reasons:\n")
		for _, reason := range sortedReasons(stats.reasons) {
			fmt.Printf("     %-32s %d\n", reason, stats.reasons[reason])
		}
	}
}

// sortedReasons orders revert reasons by count descending, then name
func sortedReasons(reasons map[string]int) []string {
	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if reasons[names[i]] != reasons[names[j]] {
			return reasons[names[i]] > reasons[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func writeMarkdownReport(filepath string, cfg *Config, target *dto.ContractResponse, stats *runStats, planned int) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	// Write header
	_, _ = fmt.Fprintf(file, "# Mint Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	// Target section
	_, _ = fmt.Fprintf(file, "## Target\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **API** | %s |\n", cfg.APIURL)
	_, _ = fmt.Fprintf(file, "| **Collection** | `%s` |\n", target.Address)
	_, _ = fmt.Fprintf(file, "| **Name** | %s (%s) |\n", target.Name, target.Symbol)
	_, _ = fmt.Fprintf(file, "| **Unit Price** | %s |\n", target.Collection.UnitPrice)
	_, _ = fmt.Fprintf(file, "| **Accounts** | %d |\n", cfg.Accounts)
	_, _ = fmt.Fprintf(file, "| **Mints per Account** | %d |\n", cfg.MintsPerAccount)
	_, _ = fmt.Fprintf(file, "| **Quantity per Mint** | %d |\n", cfg.Quantity)
	_, _ = fmt.Fprintf(file, "| **Concurrency** | %d |\n", cfg.Concurrency)
	_, _ = fmt.Fprintf(file, "\n")

	// Results section
	_, _ = fmt.Fprintf(file, "## Results\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Submitted** | %d / %d |\n", stats.submitted, planned)
	_, _ = fmt.Fprintf(file, "| **Accepted** | %d (%s) |\n", stats.accepted, percentageString(stats.accepted, stats.submitted))
	_, _ = fmt.Fprintf(file, "| **Reverted** | %d (%s) |\n", stats.reverted, percentageString(stats.reverted, stats.submitted))
	if stats.errored > 0 {
		_, _ = fmt.Fprintf(file, "| **Errors** | %d (%s) |\n", stats.errored, percentageString(stats.errored, stats.submitted))
	}
	_, _ = fmt.Fprintf(file, "| **Wall Time** | %s |\n", formatDuration(stats.wallTime))
	_, _ = fmt.Fprintf(file, "| **Throughput** | %s |\n", formatRate(stats.submitted, stats.wallTime))
	_, _ = fmt.Fprintf(file, "\n")

	// Latency section
	if len(stats.latencies) > 0 {
		sorted := make([]time.Duration, len(stats.latencies))
		copy(sorted, stats.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum time.Duration
		for _, l := range sorted {
			sum += l
		}
		avg := sum / time.Duration(len(sorted))

		_, _ = fmt.Fprintf(file, "## Latency\n\n")
		_, _ = fmt.Fprintf(file, "| Percentile | Duration |\n")
		_, _ = fmt.Fprintf(file, "|------------|----------|\n")
		_, _ = fmt.Fprintf(file, "| **min** | %s |\n", formatDuration(sorted[0]))
		_, _ = fmt.Fprintf(file, "| **avg** | %s |\n", formatDuration(avg))
		_, _ = fmt.Fprintf(file, "| **p50** | %s |\n", formatDuration(percentile(sorted, 50)))
		_, _ = fmt.Fprintf(file, "| **p95** | %s |\n", formatDuration(percentile(sorted, 95)))
		_, _ = fmt.Fprintf(file, "| **p99** | %s |\n", formatDuration(percentile(sorted, 99)))
		_, _ = fmt.Fprintf(file, "| **max** | %s |\n", formatDuration(sorted[len(sorted)-1]))
		_, _ = fmt.Fprintf(file, "\n")
	}

	// Revert reasons section
	if len(stats.reasons) > 0 {
		_, _ = fmt.Fprintf(file, "## Revert Reasons\n\n")
		_, _ = fmt.Fprintf(file, "| Reason | Count |\n")
		_, _ = fmt.Fprintf(file, "|--------|-------|\n")
		for _, reason := range sortedReasons(stats.reasons) {
			_, _ = fmt.Fprintf(file, "| %s | %d |\n", reason, stats.reasons[reason])
		}
		_, _ = fmt.Fprintf(file, "\n")
	}

	return nil
}

// benchClient wraps the HTTP calls the benchmark makes against the API
type benchClient struct {
	baseURL    string
	authHeader string
	client     *http.Client
	canon      adapter.JCS
}

func (b *benchClient) health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return b.get(ctx, "/health", &out)
}

func (b *benchClient) contract(ctx context.Context, address string) (*dto.ContractResponse, error) {
	var out dto.ContractResponse
	if err := b.get(ctx, "/api/v1/contracts/"+address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *benchClient) account(ctx context.Context, address string) (*dto.AccountResponse, error) {
	var out dto.AccountResponse
	if err := b.get(ctx, "/api/v1/accounts/"+address, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// submit posts a signed envelope. The envelope marshals to the same JSON
// the submission endpoint binds, so it is the request body as-is. A failed
// receipt is not an error here: it is a committed outcome.
func (b *benchClient) submit(ctx context.Context, tx *engine.Tx) (*dto.ReceiptResponse, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.authHeader != "" {
		req.Header.Set("Authorization", b.authHeader)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var receipt dto.ReceiptResponse
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return &receipt, nil
}

func (b *benchClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return err
	}
	if b.authHeader != "" {
		req.Header.Set("Authorization", b.authHeader)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError turns a non-200 response into an error carrying the API message
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		if body.Details != "" {
			return fmt.Errorf("API error %d (%s): %s: %s", resp.StatusCode, body.Code, body.Message, body.Details)
		}
		return fmt.Errorf("API error %d (%s): %s", resp.StatusCode, body.Code, body.Message)
	}
	return fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}

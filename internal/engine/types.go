// Package engine executes signed action envelopes against the journaled
// state, one at a time, and seals each outcome into the persistent journal.
// It is the single writer: every state mutation in the system flows through
// Submit or through replay of previously committed envelopes.
package engine

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// Tx is the signed action envelope submitted to the engine. Contract is the
// target contract address, or the recipient for native transfers; deploys
// leave it empty. Value is a decimal amount of native currency attached to
// the call.
type Tx struct {
	Action    domain.ActionType `json:"action"`
	Contract  string            `json:"contract,omitempty"`
	Params    json.RawMessage   `json:"params,omitempty"`
	Value     string            `json:"value,omitempty"`
	Nonce     uint64            `json:"nonce"`
	Signature string            `json:"signature,omitempty"`
}

// signingView is the digest input: the envelope without its signature.
type signingView struct {
	Action   domain.ActionType `json:"action"`
	Contract string            `json:"contract,omitempty"`
	Params   json.RawMessage   `json:"params,omitempty"`
	Value    string            `json:"value,omitempty"`
	Nonce    uint64            `json:"nonce"`
}

// Digest computes the Keccak-256 hash of the canonicalized envelope. The
// digest doubles as the transaction hash, so two envelopes that differ in
// any signed field can never collide in the journal.
func (t *Tx) Digest(canon adapter.JCS) (common.Hash, error) {
	raw, err := json.Marshal(signingView{
		Action:   t.Action,
		Contract: t.Contract,
		Params:   t.Params,
		Value:    t.Value,
		Nonce:    t.Nonce,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	canonical, err := canon.Transform(raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to canonicalize envelope: %w", err)
	}
	return crypto.Keccak256Hash(canonical), nil
}

// Sign computes the envelope digest and attaches a secp256k1 signature.
func (t *Tx) Sign(key *ecdsa.PrivateKey, canon adapter.JCS) error {
	digest, err := t.Digest(canon)
	if err != nil {
		return err
	}
	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		return fmt.Errorf("failed to sign envelope: %w", err)
	}
	t.Signature = hexutil.Encode(sig)
	return nil
}

// RecoverSender returns the account that signed the envelope digest. Both
// recovery id conventions (0/1 and the legacy 27/28) are accepted.
func (t *Tx) RecoverSender(digest common.Hash) (common.Address, error) {
	raw, err := hexutil.Decode(t.Signature)
	if err != nil || len(raw) != crypto.SignatureLength {
		return common.Address{}, domain.ErrInvalidSignature
	}
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, raw)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return common.Address{}, domain.ErrInvalidSignature
	}
	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, domain.ErrInvalidSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Genesis describes the initial world state: native allocations plus the
// contracts installed before the journal starts.
type Genesis struct {
	// Allocations maps addresses to initial native balances, as decimal
	// strings.
	Allocations map[string]string `json:"allocations,omitempty"`
	Contracts   []GenesisContract `json:"contracts,omitempty"`
}

// GenesisContract is one contract installed at genesis with its full
// constructor parameters.
type GenesisContract struct {
	Address string              `json:"address"`
	Kind    domain.ContractKind `json:"kind"`
	Owner   string              `json:"owner"`
	Params  json.RawMessage     `json:"params"`
}

package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// projectTransaction maintains the read models from the semantic events of a
// successful transaction. Runs inside the journal transaction so the read
// models can never drift from the journal.
func (s *pgStore) projectTransaction(tx *gorm.DB, commit *domain.TxCommit) error {
	receipt := commit.Receipt

	if receipt.Action.IsDeploy() {
		if err := s.projectDeploy(tx, commit); err != nil {
			return err
		}
	}

	for _, event := range receipt.Events {
		if err := s.projectEvent(tx, event); err != nil {
			return err
		}
	}
	return nil
}

// projectDeploy registers a freshly deployed contract. Name and symbol come
// from the deploy parameters in the signed envelope.
func (s *pgStore) projectDeploy(tx *gorm.DB, commit *domain.TxCommit) error {
	receipt := commit.Receipt

	var envelope struct {
		Params struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"params"`
	}
	if err := json.Unmarshal(commit.Envelope, &envelope); err != nil {
		return fmt.Errorf("failed to decode deploy envelope: %w", err)
	}

	contract := schema.Contract{
		Address:       receipt.Contract,
		Kind:          string(receipt.Action.Kind()),
		Owner:         receipt.From,
		Name:          envelope.Params.Name,
		Symbol:        envelope.Params.Symbol,
		DeployedAtSeq: receipt.Seq,
	}
	if err := tx.Create(&contract).Error; err != nil {
		return fmt.Errorf("failed to register contract: %w", err)
	}
	return nil
}

// projectEvent applies one event to the read models it touches. Event types
// with no derived state fall through untouched.
func (s *pgStore) projectEvent(tx *gorm.DB, event domain.Event) error {
	switch event.Type {
	case domain.EventTypeTokenTransfer:
		var data domain.TokenTransferData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("failed to decode token transfer event: %w", err)
		}
		// The zero address is the construction-time supply source, not a holder
		if data.From != domain.ZERO_ADDRESS {
			if err := s.debitTokenBalance(tx, event.Contract, data.From, data.Amount); err != nil {
				return err
			}
		}
		return s.creditTokenBalance(tx, event.Contract, data.To, data.Amount)

	case domain.EventTypeTokenApproval:
		var data domain.TokenApprovalData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("failed to decode token approval event: %w", err)
		}
		allowance := schema.TokenAllowance{
			Contract: event.Contract,
			Owner:    data.Owner,
			Spender:  data.Spender,
			Amount:   data.Amount,
		}
		// Approvals are absolute, so the upsert overwrites
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contract"}, {Name: "owner"}, {Name: "spender"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).Create(&allowance).Error; err != nil {
			return fmt.Errorf("failed to upsert token allowance: %w", err)
		}
		return nil

	case domain.EventTypeNFTTransfer:
		var data domain.NFTTransferData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("failed to decode nft transfer event: %w", err)
		}
		if data.From == domain.ZERO_ADDRESS {
			token := schema.CollectionToken{
				Contract:    event.Contract,
				TokenNumber: data.TokenNumber,
				Owner:       data.To,
				MintedAtSeq: event.TxSeq,
				MintedAt:    event.Timestamp,
			}
			if err := tx.Create(&token).Error; err != nil {
				return fmt.Errorf("failed to record minted token: %w", err)
			}
			return nil
		}
		result := tx.Model(&schema.CollectionToken{}).
			Where("contract = ? AND token_number = ?", event.Contract, data.TokenNumber).
			Update("owner", data.To)
		if result.Error != nil {
			return fmt.Errorf("failed to update token owner: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("no minted token %d on contract %s", data.TokenNumber, event.Contract)
		}
		return nil

	case domain.EventTypeOwnershipTransferred:
		var data domain.OwnershipTransferredData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return fmt.Errorf("failed to decode ownership event: %w", err)
		}
		result := tx.Model(&schema.Contract{}).
			Where("address = ?", event.Contract).
			Update("owner", data.NewOwner)
		if result.Error != nil {
			return fmt.Errorf("failed to update contract owner: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("no contract row for %s", event.Contract)
		}
		return nil
	}

	return nil
}

// creditTokenBalance adds an amount to a holder's balance, creating the row
// on first touch
func (s *pgStore) creditTokenBalance(tx *gorm.DB, contract, holder, amount string) error {
	row := schema.TokenBalance{
		Contract: contract,
		Holder:   holder,
		Balance:  amount,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contract"}, {Name: "holder"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("token_balances.balance + excluded.balance"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to credit token balance: %w", err)
	}
	return nil
}

// debitTokenBalance subtracts an amount from a holder's balance. The contract
// already verified the balance covers the amount, so a missing row means the
// projection has drifted.
func (s *pgStore) debitTokenBalance(tx *gorm.DB, contract, holder, amount string) error {
	result := tx.Model(&schema.TokenBalance{}).
		Where("contract = ? AND holder = ?", contract, holder).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to debit token balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no token balance row for %s on contract %s", holder, contract)
	}
	return nil
}

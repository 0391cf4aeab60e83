package repository

import (
	"sort"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/model"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func relatedItemColumns(item *entity.RelatedItem) (*string, *string) {
	if item == nil {
		return nil, nil
	}
	return optionalString(item.ID), optionalString(string(item.Type))
}

func relatedItemFromColumns(id, itemType *string) *entity.RelatedItem {
	if id == nil && itemType == nil {
		return nil
	}
	return &entity.RelatedItem{ID: derefString(id), Type: entity.RelatedItemType(derefString(itemType))}
}

// transactionToModel converts a transaction entity to a database model
func transactionToModel(txn *entity.Transaction) model.Transaction {
	relatedID, relatedType := relatedItemColumns(txn.RelatedItem)
	return model.Transaction{
		ID:                txn.ID,
		OwnerID:           txn.OwnerID,
		ClientReference:   optionalString(txn.ClientReference),
		Direction:         string(txn.Direction),
		Amount:            txn.Amount,
		Currency:          txn.Currency,
		Purpose:           string(txn.Purpose),
		RelatedItemID:     relatedID,
		RelatedItemType:   relatedType,
		Gateway:           txn.Gateway,
		Type:              string(txn.Type),
		Status:            string(txn.Status),
		ResultCode:        txn.ResultCode,
		ResultDescription: txn.ResultDescription,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
		CompletedAt:       txn.CompletedAt,
		Metadata:          txn.Metadata,
	}
}

// transactionToEntity converts a database model, with its correlations preloaded, to an entity
func transactionToEntity(m *model.Transaction) *entity.Transaction {
	correlations := append([]model.TransactionCorrelation(nil), m.Correlations...)
	sort.Slice(correlations, func(i, j int) bool {
		return correlations[i].Position < correlations[j].Position
	})

	ids := make(entity.CorrelationIDs, 0, len(correlations))
	for _, c := range correlations {
		ids = append(ids, entity.CorrelationID{Kind: entity.CorrelationKind(c.Kind), Value: c.Value})
	}

	metadata := map[string]any(m.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &entity.Transaction{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		ClientReference:   derefString(m.ClientReference),
		Direction:         entity.Direction(m.Direction),
		Amount:            m.Amount,
		Currency:          m.Currency,
		Purpose:           entity.Purpose(m.Purpose),
		RelatedItem:       relatedItemFromColumns(m.RelatedItemID, m.RelatedItemType),
		Gateway:           m.Gateway,
		Type:              entity.GatewayTransactionType(m.Type),
		CorrelationIDs:    ids,
		Status:            entity.TransactionStatus(m.Status),
		ResultCode:        m.ResultCode,
		ResultDescription: m.ResultDescription,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		CompletedAt:       m.CompletedAt,
		Metadata:          metadata,
	}
}

// ledgerEntryToModel converts a ledger entry to a database model
func ledgerEntryToModel(e *entity.LedgerEntry) model.LedgerEntry {
	relatedID, relatedType := relatedItemColumns(e.RelatedItem)
	return model.LedgerEntry{
		ID:              e.ID,
		TransactionID:   e.TransactionID,
		OwnerID:         e.OwnerID,
		Amount:          e.Amount,
		Currency:        e.Currency,
		Purpose:         string(e.Purpose),
		RelatedItemID:   relatedID,
		RelatedItemType: relatedType,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
	}
}

// ledgerEntryToEntity converts a database model to a ledger entry
func ledgerEntryToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Purpose:       entity.Purpose(m.Purpose),
		RelatedItem:   relatedItemFromColumns(m.RelatedItemID, m.RelatedItemType),
		Status:        entity.LedgerStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

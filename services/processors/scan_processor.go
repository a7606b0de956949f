package processors

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "qris-stream/models"
	qris "qris-stream/qris"

	// External Packages
	"go.uber.org/zap"
)

type HistoryRepository interface {
	Upsert(ctx context.Context, history models.MerchantHistory) error
}

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

type PayloadCache interface {
	Put(ctx context.Context, payload, amount, dynamic string) error
}

// ScanProcessor turns scan events into dynamic payloads. Events whose
// payload cannot be interpreted are dead-lettered instead of failing the
// batch; a storage failure fails the batch so the records are re-polled.
type ScanProcessor struct {
	Logger  *zap.Logger
	History HistoryRepository
	DLQ     DeadLetterQueue
	Cache   PayloadCache
}

func NewScanProcessor(logger *zap.Logger, history HistoryRepository, dlq DeadLetterQueue, cache PayloadCache) *ScanProcessor {
	return &ScanProcessor{Logger: logger, History: history, DLQ: dlq, Cache: cache}
}

func (p *ScanProcessor) ProcessRecords(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	var dead []models.Record
	for _, record := range records {
		var event models.ScanEvent
		if err := json.Unmarshal(record.Value, &event); err != nil {
			p.Logger.Error("failed to unmarshal scan event", zap.Error(err))
			dead = append(dead, record)
			continue
		}

		dynamic, err := qris.Transform(event.Payload, event.Amount)
		if err != nil {
			p.Logger.Error("failed to transform payload",
				zap.String("scan_id", event.ScanID), zap.Error(err))
			dead = append(dead, record)
			continue
		}

		if err := qris.VerifyChecksum(dynamic); err != nil {
			// Transform output always verifies against itself; a failure
			// here means the codec is broken, not the input.
			return fmt.Errorf("dynamic payload failed self-check: %v", err)
		}

		if err := p.Cache.Put(ctx, event.Payload, event.Amount, dynamic); err != nil {
			p.Logger.Warn("failed to cache dynamic payload",
				zap.String("scan_id", event.ScanID), zap.Error(err))
		}

		if err := p.History.Upsert(ctx, event.Transform(dynamic)); err != nil {
			return fmt.Errorf("failed to save merchant history: %v", err)
		}
	}

	if len(dead) > 0 {
		if err := p.DLQ.Send(ctx, dead); err != nil {
			p.Logger.Error("failed to dead-letter records", zap.Error(err))
		}
	}
	return nil
}

package service

import (
	"context"

	"FinScan/internal/domain/models"
)

// Strategy evaluates one symbol. It returns (nil, nil) when the symbol was
// evaluated but nothing triggered, an error wrapping
// models.ErrInsufficientHistory when the symbol must be skipped, and any
// other error when evaluation failed.
type Strategy interface {
	Name() string
	Category() models.ScanType
	Evaluate(ctx context.Context, symbol string) (*models.Signal, error)
}

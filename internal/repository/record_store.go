package repository

import (
	"context"

	"github.com/factupro/invoice-api/internal/domain"
)

// RecordStore persists invoice metadata.
type RecordStore interface {
	// Put writes a full record, overwriting any existing record with the same
	// id.
	Put(ctx context.Context, invoice *domain.Invoice) error

	// Scan returns every invoice in the table, following pagination until all
	// pages are consumed. A non-empty monthPrefix restricts the result to
	// records whose Date begins with it; the filter is applied server-side on
	// each page.
	Scan(ctx context.Context, monthPrefix string) ([]domain.Invoice, error)

	// Delete removes the record with the given id, failing with
	// domain.ErrRecordNotFound when it does not exist.
	Delete(ctx context.Context, invoiceID string) error
}

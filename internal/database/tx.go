package database

import (
	"context"

	"gorm.io/gorm"
)

type importTxKey struct{}

// withImportTx binds tx to ctx. Store calls made with the returned context
// run inside tx, so a reset and the inserts that follow commit together.
func withImportTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, importTxKey{}, tx)
}

// conn returns the import transaction bound to ctx, or the store
// connection scoped to ctx when there is none.
func (s *Store) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(importTxKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

// inTx runs fn inside one transaction of the store
func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withImportTx(ctx, tx))
	})
}

// Package db provides the PostgreSQL connection pool and schema migrations.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgxpool)
//   - Connection health checks
//   - Applying the embedded goose migrations in migrations/
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db

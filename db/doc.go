// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Opening

Open accepts "sqlite" (modernc.org/sqlite) or "postgres" (github.com/lib/pq)
and pings the connection before returning it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

The driver packages are imported by main.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_entry: JSON documents under fixed keys (submission collections,
    poll options, honest poll tally, vote flags, last visit)

Queries use $N placeholders, which both drivers accept.
*/
package db

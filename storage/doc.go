// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage is the key/value persistence port.

KV is implemented by SQLKV (kv_entry table) and MemoryKV. Values are JSON.

Load and Save read and overwrite whole arrays. They never return errors: a
missing key, a corrupt value or a failed read loads as empty, and a failed
write is logged. Collection adds a mutex so concurrent Prepend calls in one
process do not lose each other's records.

	volunteers := storage.NewCollection[models.VolunteerSubmission](kv, storage.KeyVolunteers)
	volunteers.Prepend(ctx, record)
*/
package storage

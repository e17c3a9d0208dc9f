// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submissions implements the volunteer, problem-report and
meeting-invitation form flows.

Each Submit call validates required fields, stamps the record with a UUIDv7
id and a Unix-millisecond timestamp, prepends it to its collection, and hands
it to the Forwarder. The forwarder's outcome never changes the result.

Required fields:

	volunteer: name, phone, area
	problem:   location, description (category defaults to Roads)
	meeting:   name, phone, location, peopleCount, isCommitted == true

A rejected submission returns *ValidationError and stores nothing.
*/
package submissions

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheets mirrors submissions to a spreadsheet web app.

Each submission is posted once as

	{"action": "submit", "type": "volunteer", "data": {...record, "serverTimestamp": "..."}}

The web app's reply is never read. A request that leaves the process counts
as delivered; a transport error is logged and dropped. The local store is the
only durable copy.

Forwarder runs sends in the background. Call Wait during shutdown.
*/
package sheets

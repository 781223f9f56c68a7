// Package notification contains the append-only notification log entry and
// the actor Role used to query it. Entries are produced by the assignment
// coordinator and by the periodic compliance scanner, and surfaced to owners
// and drivers in reverse chronological order.
package notification

// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular byte buffer over caller-owned storage.
//
// A Ring never allocates after New and never frees the slice it was given.
// Occupancy is tracked by a head cursor (next write), a tail cursor (next
// read) and a full flag that disambiguates head == tail:
//
//	full == false && head == tail  ->  empty
//	full == true  && head == tail  ->  Cap() bytes buffered
//
// Bulk operations are all-or-nothing: a Write that does not fit, or a
// ReadFull/PeekFull asking for more than Len(), fails without touching the
// cursors. Failures carry an api.Status retrievable with api.StatusOf.
//
// A Ring is not safe for concurrent use.
package ring

// Package memory provides the in-memory registries of the activity service.
//
// ActivityStore holds the activity catalogue and rosters; SessionStore holds
// teacher sessions keyed by token hash with a secondary index by username.
// Both are built on pkg/cmap, so entries on different shards never contend.
//
// Thread Safety:
//
// Every roster check-then-act runs inside cmap.Map.Compute under the owning
// shard's write lock. Session operations touching more than one index take
// the store mutex. Values handed out are clones.
package memory

// Package repositories provides the persistence layer for the fitsense CLI.
//
// Everything is built on a single string key-value capability ([Store]),
// backed by one SQLite table ([KVStore]). The key layout mirrors the
// original browser-local store and is a compatibility contract:
//
//   - "logs"            JSON array of [models.WorkoutLog], global,
//     most-recent-first, partitioned per user at read time
//   - "users"           JSON object of username -> [models.UserProfile]
//   - "activeUser"      bare username of the signed-in user
//   - "plan_<username>" bare markdown text of the last generated plan
//
// Reads that hit unparseable JSON degrade to empty collections rather
// than failing; a corrupt store must never take the application down.
// Writes are last-write-wins on the whole serialized collection, so two
// processes sharing one store file can silently lose appends. That is an
// accepted limitation of the single-device model.
package repositories

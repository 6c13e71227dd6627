// Package compose delegates multi-file configuration merging to docker compose.
//
// The Merger interface hides how the merge is performed. CLI implements it
// by running `docker compose ... config` (or a standalone docker-compose
// binary, or any configured command) in the project directory.
//
// The merged output is then passed through Repair, which fixes fields that
// compose is known to serialize in a form it cannot read back:
//
//   - a service restart policy rendered as {Name, MaximumRetryCount} is
//     rewritten to its compact form ("always", "on-failure:5", ...);
//   - the derived external_name field is dropped from network definitions.
//
// Repair re-encodes the document with sorted keys and a fixed indent, so
// the same input always produces byte-identical output. Drift detection in
// the app package relies on that.
package compose

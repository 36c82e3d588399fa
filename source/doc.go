// Package source defines the data-source collaborator consumed by the
// cornerpoint inspection engine.
//
// What:
//
//   - DataSource is the read-only view of an already-parsed grid
//     description: named keyword arrays (floating-point or integer) plus
//     an optional structured SPECGRID record.
//   - MapSource is an in-memory DataSource backed by maps, intended for
//     tests, examples, and embedders that parse grid files elsewhere.
//
// Why:
//
//   - The inspection engine never touches files or parsers; it consumes
//     exactly this surface. Any parser can adapt its output to DataSource
//     and gain every geometric query for free.
//
// Errors:
//
//   - ErrUnknownField: a value lookup named a field the source does not
//     hold. HasField/HasFields never fail; value getters do.
package source

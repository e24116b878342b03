// Package timezone defines the time-zone capability interface and the
// process-wide alias registry.
//
// # Capability Interface
//
// A time zone implementation provides offset lookups and a set of
// classification queries. Zones whose offset never changes (like Local
// Mean Time) answer both offset lookups with the same constant; zones
// backed by historical rules would not. The framework only ever calls
// through this interface and never inspects the concrete type.
//
// # Alias Registry
//
// The registry maps alias names to fixed offsets. Registration is a
// one-way write: a registered alias captures the offset at call time and
// is not updated when the registering zone later changes. Lookups and
// name enumeration exist for tooling and tests. The process-wide table
// is available via DefaultRegistry; components that register aliases
// should accept a *Registry so tests can supply their own.
package timezone

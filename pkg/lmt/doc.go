// Package lmt implements a Local Mean Time zone: a fixed UTC offset
// derived purely from geographic longitude.
//
// Local Mean Time ignores daylight saving and political time-zone rules.
// The mapping is linear: ±180° of longitude corresponds to exactly ±12
// hours, i.e. one second of offset per 1/240 of a degree. A zone built
// for longitude 13.41 (Berlin) is therefore about 54 minutes ahead of
// UTC, regardless of the date.
//
// # Host Framework Integration
//
// Zone satisfies the timezone.Zone capability interface. Because the
// offset never varies, OffsetForInstant and OffsetForLocalInstant always
// agree, daylight saving is never in effect, and the short name is
// always "LMT". The zone classifies itself under the Solar category.
//
// # Mutation Quirks
//
// SetName and SetLongitude treat their zero value as "no new value" and
// act as plain reads. A longitude of exactly 0 can only be set through
// construction, and a name can never be reset to empty.
package lmt

// Package timezone holds the display timezone of the studio.
//
// Class start times are stored and compared in UTC. The display location is
// only applied when rendering (the datetime_ist fields) or when turning a
// studio wall-clock time, such as a seeded "07:00", into an instant.
//
// Usage Examples:
//
//  1. Rendering a stored instant:
//     s := timezone.Format(class.StartTime, time.RFC3339) // "2025-06-10T07:00:00+05:30"
//
//  2. Wall-clock to UTC:
//     t := timezone.Date(2025, time.June, 10, 7, 0) // 2025-06-10T01:30:00Z
//
// Supported APP_TIMEZONE formats:
// - Fixed offsets: "+05:30", "-03:00", "UTC+05:30", "+0530"
// - IANA names: "UTC", "Asia/Kolkata", "Europe/London"
//
// The location is loaded from configuration when the package is imported and
// falls back to UTC+05:30 when the value cannot be parsed.
package timezone

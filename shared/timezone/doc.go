// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current instant and calendar date:
//     now := timezone.Now()     // current time in app timezone
//     today := timezone.Today() // today's date, zone-free (midnight UTC)
//
//  2. Formatting timestamps in app timezone:
//     formatted := timezone.Format(record.CreatedAt, time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names such as "UTC" or "Europe/Rome".
package timezone

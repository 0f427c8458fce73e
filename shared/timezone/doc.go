// Package timezone resolves the hotel's local time for the rest of the
// application. Booking dates, invoice issue dates, and the occupancy
// calendar all run on property-local days rather than server time.
//
//	now := timezone.Now()                   // current time at the property
//	local := timezone.ToAppTime(someTime)   // convert any time to property time
//	s := timezone.Format(time.Now(), "02.01.2006")
//	t, err := timezone.Parse("2006-01-02", "2026-03-01")
//	loc := timezone.GetLocation()
//
// The location comes from the APP_TIMEZONE environment variable and is
// loaded once on package import. Only IANA database names are accepted,
// for example "Europe/Berlin" or "UTC".
package timezone

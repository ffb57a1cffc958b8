// Package domain models hourly weather observations from Met Éireann station
// exports and the analyses run over them.
//
// # Data Source
//
// The input is the Met Éireann hourly CSV export (hrly_Irish_weather.csv). Each
// row is one station-hour. Besides station metadata (county, station, latitude,
// longitude) it carries a timestamp and thirteen measurement columns:
//
//	rain   precipitation amount (mm)
//	temp   air temperature (°C)
//	wetb   wet bulb temperature (°C)
//	dewpt  dew point temperature (°C)
//	vappr  vapour pressure (hPa)
//	rhum   relative humidity (%)
//	msl    mean sea level pressure (hPa)
//	wdsp   mean wind speed (knots)
//	wddir  predominant wind direction (degrees)
//	sun    sunshine duration (hours)
//	vis    visibility (m)
//	clht   cloud ceiling height (100s of feet)
//	clamt  cloud amount (okta)
//
// Time format:
//
//	"<day>-<mon>-<year> <hour>:<minute>", e.g. "01-jan-1990 00:00".
//	The month abbreviation is matched case-insensitively. Times are treated as UTC.
//
// # Missing Values
//
// Station exports leave cells blank (or a single space) when an instrument did
// not report. Any cell that does not parse is coerced to missing rather than
// rejected; see [CoerceNumeric] and [ParseDate]. Numeric columns are then
// mean-filled by [Clean].
//
// # Seasons
//
// [SeasonForMonth] buckets calendar months into four fixed seasons. The labels
// follow a monsoon-climate convention (Winter, Summer, Monsoon, Post-Monsoon)
// even though the data is Irish; the month ranges are kept as-is so summaries
// stay comparable with earlier reports.
package domain

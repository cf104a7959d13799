package entity

// FlightPackageVolume is the number of packages booked onto one flight
// since local midnight, the evidence the priority arbiter works from.
type FlightPackageVolume struct {
	FlightIata   string
	PackageCount int
}

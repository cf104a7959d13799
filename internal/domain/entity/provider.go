package entity

// ProviderResponse is the flight provider's JSON envelope, parsed verbatim.
// A provider-signalled error arrives in Error with HTTP 200; the caller
// decides what to do with it.
type ProviderResponse struct {
	Pagination *ProviderPagination `json:"pagination"`
	Data       []ProviderFlight    `json:"data"`
	Error      *ProviderError      `json:"error"`
}

type ProviderPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProviderFlight is one flight record as the provider ships it, nested
// objects and all. The normalizer flattens this into FlightStatus.
type ProviderFlight struct {
	FlightDate   string            `json:"flight_date"`
	FlightStatus string            `json:"flight_status"`
	Departure    *ProviderLeg      `json:"departure"`
	Arrival      *ProviderLeg      `json:"arrival"`
	Airline      *ProviderAirline  `json:"airline"`
	Flight       *ProviderFlightNo `json:"flight"`
	Aircraft     *ProviderAircraft `json:"aircraft"`
	Live         *ProviderLive     `json:"live"`
}

type ProviderLeg struct {
	Airport   string `json:"airport"`
	City      string `json:"city"`
	Timezone  string `json:"timezone"`
	Iata      string `json:"iata"`
	Icao      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

type ProviderAirline struct {
	Name string `json:"name"`
	Iata string `json:"iata"`
	Icao string `json:"icao"`
}

type ProviderFlightNo struct {
	Number string `json:"number"`
	Iata   string `json:"iata"`
	Icao   string `json:"icao"`
}

type ProviderAircraft struct {
	Registration string `json:"registration"`
	Iata         string `json:"iata"`
	Icao         string `json:"icao"`
	Icao24       string `json:"icao24"`
}

type ProviderLive struct {
	Updated         string  `json:"updated"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	Direction       float64 `json:"direction"`
	SpeedHorizontal float64 `json:"speed_horizontal"`
	SpeedVertical   float64 `json:"speed_vertical"`
	IsGround        bool    `json:"is_ground"`
}

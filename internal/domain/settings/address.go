package settings

import (
	"net/url"
	"strings"
)

const mapsBaseURL = "https://maps.google.com?q="

type Address struct {
	Value string
}

func NewAddress(value string) Address {
	return Address{Value: strings.TrimSpace(value)}
}

func DefaultAddress() Address {
	return Address{}
}

// MapsURL links to a Google Maps search for the address
func (a Address) MapsURL() string {
	return mapsBaseURL + url.QueryEscape(a.Value)
}

func (a Address) IsEmpty() bool {
	return a.Value == ""
}

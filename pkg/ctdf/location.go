package ctdf

import "fmt"

// GeoPoint is a place independent of any transport type, eg. an airport and a bus stop
// can both sit at the same GeoPoint
type GeoPoint struct {
	Name string `groups:"basic"`
	City string `groups:"basic"`
}

func (g GeoPoint) String() string {
	return fmt.Sprintf("%s, %s", g.Name, g.City)
}

package geosuggest

import (
	"fmt"
	"strings"
)

// ObjectType is a kind of object the API may return. Filtering by
// types works as "or", a larger type absorbs smaller ones.
type ObjectType uint8

const (
	// Biz is any organization.
	Biz ObjectType = iota
	// Geo is any geographical object.
	Geo
	Street
	// Metro is a subway station.
	Metro
	// District is a district, microdistrict or village.
	District
	// Locality is a village, town, residential complex etc.
	Locality
	// Area is a regional district.
	Area
	// Province is a province, administrative district or federal city.
	Province
	Country
	// House is a house, building or unit.
	House
)

var objectTypeNames = [...]string{
	Biz:      "biz",
	Geo:      "geo",
	Street:   "street",
	Metro:    "metro",
	District: "district",
	Locality: "locality",
	Area:     "area",
	Province: "province",
	Country:  "country",
	House:    "house",
}

// ObjectTypes returns all known object types in declaration order.
func ObjectTypes() []ObjectType {
	rv := make([]ObjectType, len(objectTypeNames))

	for i := range objectTypeNames {
		rv[i] = ObjectType(i)
	}

	return rv
}

// String returns a wire name of the type.
func (o ObjectType) String() string {
	if int(o) < len(objectTypeNames) {
		return objectTypeNames[o]
	}

	return fmt.Sprintf("objecttype(%d)", uint8(o))
}

func (o ObjectType) MarshalText() ([]byte, error) {
	if int(o) >= len(objectTypeNames) {
		return nil, fmt.Errorf("unknown object type %d", uint8(o))
	}

	return []byte(objectTypeNames[o]), nil
}

func (o *ObjectType) UnmarshalText(text []byte) error {
	value, err := ParseObjectType(string(text))
	if err != nil {
		return err
	}

	*o = value

	return nil
}

// ParseObjectType finds an object type by its name. Lookup is case
// insensitive so both "House" and "house" are accepted.
func ParseObjectType(name string) (ObjectType, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for i, v := range objectTypeNames {
		if v == name {
			return ObjectType(i), nil
		}
	}

	return 0, fmt.Errorf("unknown object type %q: %w", name, ErrInvalidArgument)
}

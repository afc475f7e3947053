package geosuggest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultResults    = 7
	DefaultSpanWidth  = 0.1
	DefaultSpanHeight = 0.1
)

// decimalRegexp is a plain decimal: no exponent, no hex, no NaN or
// Inf, dot as a separator.
var decimalRegexp = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Coordinate is a point given in degrees. The API expects longitude
// first.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

func (c Coordinate) String() string {
	return formatDecimal(c.Longitude) + "," + formatDecimal(c.Latitude)
}

// Span is a size of the search window in degrees.
type Span struct {
	Width  float64
	Height float64
}

func (s Span) String() string {
	return formatDecimal(s.Width) + "," + formatDecimal(s.Height)
}

// BoundingBox is a search window set by its opposite corners.
type BoundingBox struct {
	LowerLeft  Coordinate
	UpperRight Coordinate
}

func (b BoundingBox) String() string {
	return b.LowerLeft.String() + "," + b.UpperRight.String()
}

// Request describes a single suggest call. Optional values are nil
// pointers or zero values, see NewRequest for defaults.
//
// A request is owned by the caller. Client never retains or mutates it.
type Request struct {
	// Text is user input, usually a prefix of what user is looking for.
	Text string

	// Language is a two-letter ISO 639-1 code of the response language.
	Language string

	// Results is a maximum number of suggestions. API accepts values
	// up to 10 but no validation is made here.
	Results int

	// Highlight asks API to return index ranges of matched substrings.
	Highlight bool

	SearchCenter *Coordinate

	// SearchBounds is a size of the search window around SearchCenter.
	// It is always sent.
	SearchBounds Span

	BoundingBox *BoundingBox

	// UserCoordinate is a location of the user which is used to
	// calculate distances. If absent, API uses a window center.
	UserCoordinate *Coordinate

	// StrictBounds drops results which are outside of the search
	// window. Otherwise the window is only a hint.
	StrictBounds bool

	Types []ObjectType

	// PrintAddress asks for a component-wise address.
	PrintAddress bool

	// OrgAddressKind limits organizations to those which have an
	// address of a given precision. Only House makes sense in practice.
	OrgAddressKind *ObjectType

	// ReturnURI asks for an uri of each object which can be passed to
	// the Geocoder API.
	ReturnURI bool
}

// NewRequest creates a request for a given text with default values.
func NewRequest(text string) *Request {
	return &Request{
		Text:      text,
		Results:   DefaultResults,
		Highlight: true,
		SearchBounds: Span{
			Width:  DefaultSpanWidth,
			Height: DefaultSpanHeight,
		},
	}
}

func (r *Request) String() string {
	params := r.Encode("")
	params.Delete(ParamAPIKey)

	return params.Encode()
}

// ParseCoordinate parses "lon,lat" string.
func ParseCoordinate(value string) (Coordinate, error) {
	numbers, err := parseDecimals(value, 2)
	if err != nil {
		return Coordinate{}, fmt.Errorf("cannot parse coordinate: %w", err)
	}

	return Coordinate{Longitude: numbers[0], Latitude: numbers[1]}, nil
}

// ParseSpan parses "width,height" string.
func ParseSpan(value string) (Span, error) {
	numbers, err := parseDecimals(value, 2)
	if err != nil {
		return Span{}, fmt.Errorf("cannot parse span: %w", err)
	}

	return Span{Width: numbers[0], Height: numbers[1]}, nil
}

// ParseBoundingBox parses "lon1,lat1,lon2,lat2" string where the first
// pair is a lower-left corner.
func ParseBoundingBox(value string) (BoundingBox, error) {
	numbers, err := parseDecimals(value, 4)
	if err != nil {
		return BoundingBox{}, fmt.Errorf("cannot parse bounding box: %w", err)
	}

	return BoundingBox{
		LowerLeft:  Coordinate{Longitude: numbers[0], Latitude: numbers[1]},
		UpperRight: Coordinate{Longitude: numbers[2], Latitude: numbers[3]},
	}, nil
}

func parseDecimals(value string, count int) ([]float64, error) {
	chunks := strings.Split(value, ",")
	if len(chunks) != count {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q: %w",
			count, value, ErrInvalidArgument)
	}

	rv := make([]float64, count)

	for i, v := range chunks {
		chunk := strings.TrimSpace(v)
		if !decimalRegexp.MatchString(chunk) {
			return nil, fmt.Errorf("incorrect number %q: %w", v, ErrInvalidArgument)
		}

		number, err := strconv.ParseFloat(chunk, 64)
		if err != nil {
			return nil, fmt.Errorf("incorrect number %q: %v: %w", v, err, ErrInvalidArgument)
		}

		rv[i] = number
	}

	return rv, nil
}

// formatDecimal never uses exponent, grouping or locale specific
// separators.
func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

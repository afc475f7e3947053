package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/geosuggest/config"
	"github.com/9seconds/geosuggest/geosuggest"
)

type coordinateValue struct {
	value **geosuggest.Coordinate
}

func (c coordinateValue) Set(text string) error {
	coord, err := geosuggest.ParseCoordinate(text)
	if err != nil {
		return err
	}

	*c.value = &coord

	return nil
}

func (c coordinateValue) String() string {
	if *c.value == nil {
		return ""
	}

	return (*c.value).String()
}

type boundingBoxValue struct {
	value **geosuggest.BoundingBox
}

func (b boundingBoxValue) Set(text string) error {
	bbox, err := geosuggest.ParseBoundingBox(text)
	if err != nil {
		return err
	}

	*b.value = &bbox

	return nil
}

func (b boundingBoxValue) String() string {
	if *b.value == nil {
		return ""
	}

	return (*b.value).String()
}

type spanValue struct {
	value *geosuggest.Span
}

func (s spanValue) Set(text string) error {
	span, err := geosuggest.ParseSpan(text)
	if err != nil {
		return err
	}

	*s.value = span

	return nil
}

func (s spanValue) String() string {
	return s.value.String()
}

// cliOptions is everything which was collected from the command line
// and the config file.
type cliOptions struct {
	request *geosuggest.Request
	conf    *config.Config
	debug   bool
	dryRun  bool
}

type cli struct {
	app *kingpin.Application

	apiKey         *string
	text           *string
	language       *string
	results        *int
	noHighlight    *bool
	strictBounds   *bool
	types          *[]string
	printAddress   *bool
	orgAddressKind *string
	returnURI      *bool
	configFile     **os.File
	timeout        *time.Duration
	endpoint       *string
	debug          *bool
	dryRun         *bool

	center         *geosuggest.Coordinate
	userCoordinate *geosuggest.Coordinate
	boundingBox    *geosuggest.BoundingBox
	span           geosuggest.Span
}

// parse never touches the network. Any problem with arguments is
// reported as geosuggest.ErrInvalidArgument.
func (c *cli) parse(args []string) (*cliOptions, error) {
	if _, err := c.app.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", geosuggest.ErrInvalidArgument, err)
	}

	conf := config.Default()

	if *c.configFile != nil {
		defer (*c.configFile).Close()

		parsed, err := config.Parse(*c.configFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", geosuggest.ErrInvalidArgument, err)
		}

		conf = parsed
	}

	if *c.apiKey != "" {
		conf.APIKey = *c.apiKey
	}

	if conf.APIKey == "" {
		return nil, fmt.Errorf("%w: required flag --apikey not provided", geosuggest.ErrInvalidArgument)
	}

	if *c.endpoint != "" {
		conf.Endpoint = *c.endpoint
	}

	if *c.language != "" {
		conf.Language = *c.language
	}

	if *c.timeout != 0 {
		conf.SetTimeout(*c.timeout)
	}

	if err := config.Validate(conf); err != nil {
		return nil, fmt.Errorf("%w: %v", geosuggest.ErrInvalidArgument, err)
	}

	req := geosuggest.NewRequest(*c.text)
	req.Language = conf.Language
	req.Results = *c.results
	req.Highlight = !*c.noHighlight
	req.SearchCenter = c.center
	req.SearchBounds = c.span
	req.BoundingBox = c.boundingBox
	req.UserCoordinate = c.userCoordinate
	req.StrictBounds = *c.strictBounds
	req.PrintAddress = *c.printAddress
	req.ReturnURI = *c.returnURI

	for _, v := range *c.types {
		objectType, err := geosuggest.ParseObjectType(v)
		if err != nil {
			return nil, err
		}

		req.Types = append(req.Types, objectType)
	}

	if *c.orgAddressKind != "" {
		objectType, err := geosuggest.ParseObjectType(*c.orgAddressKind)
		if err != nil {
			return nil, err
		}

		req.OrgAddressKind = &objectType
	}

	return &cliOptions{
		request: req,
		conf:    conf,
		debug:   *c.debug,
		dryRun:  *c.dryRun,
	}, nil
}

func newCLI(stderr io.Writer) *cli {
	typeNames := make([]string, 0, len(geosuggest.ObjectTypes()))

	for _, v := range geosuggest.ObjectTypes() {
		typeNames = append(typeNames, v.String())
	}

	app := kingpin.New("geosuggest", "GeoSuggest with Yandex.")
	app.Version(config.Version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	rv := &cli{
		app: app,
		span: geosuggest.Span{
			Width:  geosuggest.DefaultSpanWidth,
			Height: geosuggest.DefaultSpanHeight,
		},
	}

	rv.apiKey = app.Flag("apikey", "Api key.").
		Short('a').
		Envar("GEOSUGGEST_APIKEY").
		String()
	rv.text = app.Flag("text", "Search text.").
		Short('t').
		Required().
		String()
	app.Flag("center", "Center coordinate to start search with, as lon,lat.").
		Short('c').
		SetValue(coordinateValue{&rv.center})
	app.Flag("span", "Width and height of the search window in degrees.").
		Default(rv.span.String()).
		SetValue(spanValue{&rv.span})
	app.Flag("bbox", "Search window as lower-left and upper-right corners: lon,lat,lon,lat.").
		SetValue(boundingBoxValue{&rv.boundingBox})
	app.Flag("user-location", "User coordinate as lon,lat. Used to calculate distances.").
		Short('u').
		SetValue(coordinateValue{&rv.userCoordinate})
	rv.language = app.Flag("lang", "Two-letter language code of the response.").
		Short('l').
		String()
	rv.results = app.Flag("results", "Maximum number of suggestions.").
		Short('n').
		Default(fmt.Sprint(geosuggest.DefaultResults)).
		Int()
	rv.noHighlight = app.Flag("no-highlight", "Do not ask for highlighted matches.").
		Bool()
	rv.strictBounds = app.Flag("strict-bounds", "Return only objects within the search window.").
		Bool()
	rv.types = app.Flag("type", "Object type to return. Can be repeated: "+strings.Join(typeNames, ", ")+".").
		Short('T').
		Strings()
	rv.printAddress = app.Flag("print-address", "Return component-wise addresses.").
		Bool()
	rv.orgAddressKind = app.Flag("org-address-kind", "Return organizations with an address of this precision.").
		String()
	rv.returnURI = app.Flag("uri", "Return object uri for the Geocoder API.").
		Bool()
	rv.configFile = app.Flag("config", "Path to the config file.").
		Short('C').
		Envar("GEOSUGGEST_CONFIG").
		File()
	rv.timeout = app.Flag("timeout", "HTTP timeout.").
		Duration()
	rv.endpoint = app.Flag("endpoint", "Suggest API endpoint.").
		String()
	rv.debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOSUGGEST_DEBUG").
		Bool()
	rv.dryRun = app.Flag("dry-run", "Print URL to request and exit.").
		Bool()

	return rv
}

package geosuggest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	ParamAPIKey         = "apikey"
	ParamText           = "text"
	ParamResults        = "results"
	ParamHighlight      = "highlight"
	ParamSpan           = "spn"
	ParamLanguage       = "lang"
	ParamCenter         = "ll"
	ParamBoundingBox    = "bbox"
	ParamUserLocation   = "ull"
	ParamStrictBounds   = "strict_bounds"
	ParamTypes          = "types"
	ParamPrintAddress   = "print_address"
	ParamOrgAddressKind = "org_address_kind"
	ParamAttrs          = "attrs"

	attrURI = "uri"
)

// Encode converts a request into query parameters. It never fails:
// each field either goes into a parameter or is omitted if it is not
// set. Parameters are ordered, so the same request always produces
// the same query string.
func (r *Request) Encode(apiKey string) *Params {
	params := NewParams()

	params.Set(ParamAPIKey, apiKey)
	params.Set(ParamText, r.Text)
	params.Set(ParamResults, strconv.Itoa(r.Results))
	params.Set(ParamHighlight, boolFlag(r.Highlight))
	params.Set(ParamSpan, r.SearchBounds.String())

	if r.Language != "" {
		params.Set(ParamLanguage, r.Language)
	}

	if r.SearchCenter != nil {
		params.Set(ParamCenter, r.SearchCenter.String())
	}

	if r.BoundingBox != nil {
		params.Set(ParamBoundingBox, r.BoundingBox.String())
	}

	if r.UserCoordinate != nil {
		params.Set(ParamUserLocation, r.UserCoordinate.String())
	}

	if r.StrictBounds {
		params.Set(ParamStrictBounds, "1")
	}

	if len(r.Types) > 0 {
		names := make([]string, len(r.Types))

		for i, v := range r.Types {
			names[i] = v.String()
		}

		params.Set(ParamTypes, strings.Join(names, ","))
	}

	if r.PrintAddress {
		params.Set(ParamPrintAddress, "1")
	}

	if r.OrgAddressKind != nil {
		params.Set(ParamOrgAddressKind, r.OrgAddressKind.String())
	}

	if r.ReturnURI {
		params.Set(ParamAttrs, attrURI)
	}

	return params
}

// DecodeParams is a reverse of Request.Encode. It returns a request
// and an api key. Absent parameters get default values of NewRequest.
func DecodeParams(values url.Values) (*Request, string, error) {
	req := NewRequest(values.Get(ParamText))

	if value := values.Get(ParamResults); value != "" {
		results, err := strconv.Atoi(value)
		if err != nil {
			return nil, "", fmt.Errorf("incorrect %s: %v: %w", ParamResults, err, ErrInvalidArgument)
		}

		req.Results = results
	}

	if value := values.Get(ParamHighlight); value != "" {
		req.Highlight = value == "1"
	}

	if value := values.Get(ParamSpan); value != "" {
		span, err := ParseSpan(value)
		if err != nil {
			return nil, "", err
		}

		req.SearchBounds = span
	}

	req.Language = values.Get(ParamLanguage)

	if value := values.Get(ParamCenter); value != "" {
		coord, err := ParseCoordinate(value)
		if err != nil {
			return nil, "", err
		}

		req.SearchCenter = &coord
	}

	if value := values.Get(ParamBoundingBox); value != "" {
		bbox, err := ParseBoundingBox(value)
		if err != nil {
			return nil, "", err
		}

		req.BoundingBox = &bbox
	}

	if value := values.Get(ParamUserLocation); value != "" {
		coord, err := ParseCoordinate(value)
		if err != nil {
			return nil, "", err
		}

		req.UserCoordinate = &coord
	}

	req.StrictBounds = values.Get(ParamStrictBounds) == "1"
	req.PrintAddress = values.Get(ParamPrintAddress) == "1"

	if value := values.Get(ParamTypes); value != "" {
		for _, name := range strings.Split(value, ",") {
			objectType, err := ParseObjectType(name)
			if err != nil {
				return nil, "", err
			}

			req.Types = append(req.Types, objectType)
		}
	}

	if value := values.Get(ParamOrgAddressKind); value != "" {
		objectType, err := ParseObjectType(value)
		if err != nil {
			return nil, "", err
		}

		req.OrgAddressKind = &objectType
	}

	for _, attr := range strings.Split(values.Get(ParamAttrs), ",") {
		if attr == attrURI {
			req.ReturnURI = true
		}
	}

	return req, values.Get(ParamAPIKey), nil
}

func boolFlag(value bool) string {
	if value {
		return "1"
	}

	return "0"
}

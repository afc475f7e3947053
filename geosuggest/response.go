package geosuggest

import "encoding/json"

// Response is a decoded answer of the suggest API. Field names in JSON
// produced by this package are lower camel case; decoding uses API
// names.
type Response struct {
	Results   []Item `json:"results"`
	RequestID string `json:"requestId,omitempty"`
}

func (r *Response) UnmarshalJSON(data []byte) error {
	raw := struct {
		Results   []Item `json:"results"`
		RequestID string `json:"suggest_reqid"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Results = raw.Results
	r.RequestID = raw.RequestID

	return nil
}

type Item struct {
	Title    Text      `json:"title"`
	Subtitle *Text     `json:"subTitle,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Distance *Distance `json:"distance,omitempty"`
	Address  *Address  `json:"address,omitempty"`
	URI      string    `json:"uri,omitempty"`
}

func (i *Item) UnmarshalJSON(data []byte) error {
	raw := struct {
		Title    Text      `json:"title"`
		Subtitle *Text     `json:"subtitle"`
		Tags     []string  `json:"tags"`
		Distance *Distance `json:"distance"`
		Address  *Address  `json:"address"`
		URI      string    `json:"uri"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Item(raw)

	return nil
}

// Text is a piece of text with ranges which match user input.
type Text struct {
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

func (t *Text) UnmarshalJSON(data []byte) error {
	raw := struct {
		Text       string      `json:"text"`
		Highlights []Highlight `json:"hl"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Text(raw)

	return nil
}

// Highlight is a range [Start, End) of a text to emphasize.
type Highlight struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (h *Highlight) UnmarshalJSON(data []byte) error {
	raw := struct {
		Start int `json:"begin"`
		End   int `json:"end"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*h = Highlight(raw)

	return nil
}

// Distance is a distance from the user (or the window center) to the
// object. Value is in meters, Text is a human readable form.
type Distance struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type Address struct {
	FormattedAddress string             `json:"formattedAddress"`
	Components       []AddressComponent `json:"components,omitempty"`
}

func (a *Address) UnmarshalJSON(data []byte) error {
	raw := struct {
		FormattedAddress string             `json:"formatted_address"`
		Components       []AddressComponent `json:"component"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Address(raw)

	return nil
}

type AddressComponent struct {
	Name  string   `json:"name"`
	Kinds []string `json:"kinds,omitempty"`
}

func (a *AddressComponent) UnmarshalJSON(data []byte) error {
	raw := struct {
		Name  string   `json:"name"`
		Kinds []string `json:"kind"`
	}{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = AddressComponent(raw)

	return nil
}

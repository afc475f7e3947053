package geosuggest

import (
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Params is an ordered set of query parameters. Each name is present
// at most once. Setting an existing name replaces its value but keeps
// its original position.
type Params struct {
	values *orderedmap.OrderedMap[string, string]
}

func (p *Params) Set(name, value string) {
	p.values.Set(name, value)
}

func (p *Params) Get(name string) (string, bool) {
	return p.values.Get(name)
}

func (p *Params) Delete(name string) {
	p.values.Delete(name)
}

func (p *Params) Len() int {
	return p.values.Len()
}

// Keys returns parameter names in order.
func (p *Params) Keys() []string {
	rv := make([]string, 0, p.values.Len())

	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		rv = append(rv, pair.Key)
	}

	return rv
}

// Values converts parameters into url.Values. Order is lost.
func (p *Params) Values() url.Values {
	rv := make(url.Values, p.values.Len())

	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		rv.Set(pair.Key, pair.Value)
	}

	return rv
}

// Encode builds a query string. Unlike url.Values.Encode, it does not
// sort names and keeps the order in which they were set.
func (p *Params) Encode() string {
	builder := strings.Builder{}

	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

func NewParams() *Params {
	return &Params{
		values: orderedmap.New[string, string](),
	}
}

// Geosuggest is a command line client of the Yandex Maps geosuggest
// API.
//
// Give it a text and, optionally, a spatial context and it prints
// place suggestions as JSON:
//
//     geosuggest -a APIKEY -t "red squ" -c 37.62,55.75 --type biz
//
// The tool is organized into 2 logical parts:
//
// Geosuggest
//
// geosuggest is a library package which contains a request model,
// its encoding into query parameters, a client and a response model.
// It can be used on its own.
//
// Config
//
// An optional TOML file with an api key, an endpoint and HTTP
// settings. Command line flags take precedence over it.
package main

// Package web holds the HTTP-adjacent helpers the tracking client needs
// without owning any transport: query-string serialisation, header map
// normalisation and JSONP envelope parsing.
package web

// Package wire models the flattened query-protocol request sent to the
// Corvus Fleet service: an action name, a protocol version, and an ordered
// list of form parameters.
package wire

import (
	"net/http"
	"net/url"
)

// Request is the wire-level representation of one API call. It is built
// fresh per call by an operation marshaller, handed to the transport, and
// discarded.
type Request struct {
	// Service is the wire name of the target service, e.g. "CorvusFleet".
	Service string
	// Action identifies the operation, e.g. "SendCommand".
	Action string
	// Version is the protocol version string, e.g. "2025-01-20".
	Version string
	// Method is the HTTP method; the query protocol always uses POST.
	Method string

	Params Params
}

// New returns a Request carrying the fixed protocol metadata. Action and
// Version are attached as parameters unconditionally, before any field
// walking happens.
func New(service, action, version string) *Request {
	r := &Request{
		Service: service,
		Action:  action,
		Version: version,
		Method:  http.MethodPost,
	}
	r.Params.Add("Action", action)
	r.Params.Add("Version", version)
	return r
}

// AddParam appends a parameter, preserving insertion order.
func (r *Request) AddParam(name, value string) {
	r.Params.Add(name, value)
}

// param is a single name/value pair.
type param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered parameter list. Order is not significant
// to the service but keeps the encoded form reproducible, which the tests
// and the request signer rely on.
type Params struct {
	list []param
}

// Add appends a name/value pair.
func (p *Params) Add(name, value string) {
	p.list = append(p.list, param{Name: name, Value: value})
}

// Get returns the first value recorded for name.
func (p *Params) Get(name string) (string, bool) {
	for _, kv := range p.list {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return "", false
}

// Len reports the number of parameters.
func (p *Params) Len() int { return len(p.list) }

// Pairs returns the parameters in insertion order as [name, value] pairs.
func (p *Params) Pairs() [][2]string {
	out := make([][2]string, 0, len(p.list))
	for _, kv := range p.list {
		out = append(out, [2]string{kv.Name, kv.Value})
	}
	return out
}

// Names returns every parameter name in insertion order.
func (p *Params) Names() []string {
	out := make([]string, 0, len(p.list))
	for _, kv := range p.list {
		out = append(out, kv.Name)
	}
	return out
}

// Values converts the parameter list to url.Values for form encoding.
func (p *Params) Values() url.Values {
	v := make(url.Values, len(p.list))
	for _, kv := range p.list {
		v.Add(kv.Name, kv.Value)
	}
	return v
}

// Encode renders the parameters as an application/x-www-form-urlencoded
// body, preserving insertion order. This is the canonical form the signer
// operates on.
func (p *Params) Encode() string {
	var buf []byte
	for i, kv := range p.list {
		if i > 0 {
			buf = append(buf, '&')
		}
		buf = append(buf, url.QueryEscape(kv.Name)...)
		buf = append(buf, '=')
		buf = append(buf, url.QueryEscape(kv.Value)...)
	}
	return string(buf)
}

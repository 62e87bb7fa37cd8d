package musixmatch

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrOutOfRange is wrapped by Validate when a parameter falls outside its documented range.
var ErrOutOfRange = errors.New("parameter out of range")

// Params is an ordered set of query parameters. Keys keep their first insertion order.
// The zero value is empty and ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// Set stores value under key, replacing any previous value.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len reports the number of present parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns the present keys in insertion order.
func (p Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Values converts the set into url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		v.Set(k, p.values[k])
	}
	return v
}

// Encode renders the set as a URL query string.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// Merge copies every entry of other into p. Entries of other win.
func (p *Params) Merge(other Params) {
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

func (p *Params) setString(key string, v *string) {
	if v != nil {
		p.Set(key, *v)
	}
}

func (p *Params) setUint(key string, v *uint) {
	if v != nil {
		p.Set(key, strconv.FormatUint(uint64(*v), 10))
	}
}

func (p *Params) setBool(key string, v *bool) {
	if v != nil {
		p.Set(key, strconv.FormatBool(*v))
	}
}

func (p *Params) setFloat(key string, v *float64) {
	if v != nil {
		p.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setToken[T fmt.Stringer](p *Params, key string, v *T) {
	if v != nil {
		p.Set(key, (*v).String())
	}
}

// Ptr returns a pointer to v. It is the usual way to pass a present value to a setter.
func Ptr[T any](v T) *T {
	return &v
}

// Validate checks the documented ranges of the paging and relevance parameters:
// page >= 1, page_size 1..100, quorum_factor 0.1..0.9 and min_completed 0..1.
// Setters never call it; the values are forwarded verbatim unless the caller does.
func (p Params) Validate() error {
	var errs []error
	if v, ok := p.values[keyPage]; ok {
		if n, err := strconv.ParseUint(v, 10, 64); err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("%w: %s=%s, want >= 1", ErrOutOfRange, keyPage, v))
		}
	}
	if v, ok := p.values[keyPageSize]; ok {
		if n, err := strconv.ParseUint(v, 10, 64); err != nil || n < 1 || n > 100 {
			errs = append(errs, fmt.Errorf("%w: %s=%s, want 1..100", ErrOutOfRange, keyPageSize, v))
		}
	}
	if v, ok := p.values[keyQuorumFactor]; ok {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f < 0.1 || f > 0.9 {
			errs = append(errs, fmt.Errorf("%w: %s=%s, want 0.1..0.9", ErrOutOfRange, keyQuorumFactor, v))
		}
	}
	if v, ok := p.values[keyMinCompleted]; ok {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f < 0 || f > 1 {
			errs = append(errs, fmt.Errorf("%w: %s=%s, want 0..1", ErrOutOfRange, keyMinCompleted, v))
		}
	}
	return errors.Join(errs...)
}

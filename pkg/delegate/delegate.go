// Package delegate provides an allow-listed attribute-forwarding proxy:
// a fixed set of field and method names is forwarded to a target value,
// and every other attribute access fails with ErrNoSuchAttribute.
package delegate

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilTarget is returned when the proxy target is nil.
	ErrNilTarget = errors.New("delegate target is nil")

	// ErrNoSuchAttribute is returned for attribute names outside the
	// allow-list or not present on the target.
	ErrNoSuchAttribute = errors.New("no such attribute")

	// ErrNotAMethod is returned when CallMethod names an attribute that
	// is not callable.
	ErrNotAMethod = errors.New("attribute is not a method")
)

// Proxy forwards a fixed allow-list of attribute names to a target
// value. The allow-list is captured at construction and read-only
// afterwards.
type Proxy struct {
	target  reflect.Value
	allowed map[string]struct{}
}

// New builds a Proxy over target exposing only the named attributes.
// Target may be a struct or a pointer to one.
func New(target any, attrs ...string) (*Proxy, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	allowed := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		allowed[a] = struct{}{}
	}
	return &Proxy{target: reflect.ValueOf(target), allowed: allowed}, nil
}

// Attr returns the named attribute from the target: a field value, or a
// bound method as a callable value. Names outside the allow-list fail
// with ErrNoSuchAttribute even when the target has them.
func (p *Proxy) Attr(name string) (any, error) {
	v, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// CallMethod invokes the named delegated method with the given
// arguments and returns its results.
func (p *Proxy) CallMethod(name string, args ...any) ([]any, error) {
	v, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %q", ErrNotAMethod, name)
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := v.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

func (p *Proxy) lookup(name string) (reflect.Value, error) {
	if _, ok := p.allowed[name]; !ok {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrNoSuchAttribute, name)
	}
	if m := p.target.MethodByName(name); m.IsValid() {
		return m, nil
	}
	v := p.target
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if f := v.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f, nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: %q", ErrNoSuchAttribute, name)
}

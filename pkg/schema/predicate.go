package schema

import (
	"reflect"
	"runtime"
	"strings"
)

type predicateCheck struct {
	fn   func(any) bool
	name string
	opts options
}

// Predicate accepts values for which fn returns true.
func Predicate(fn func(any) bool, opts ...Option) Validator {
	o := newOptions(MsgPredicate, KeyPredicate, KindPredicate, opts)
	name := o.name
	if name == "" {
		name = funcName(fn)
	}
	return &predicateCheck{fn: fn, name: name, opts: o}
}

// PredicateOf adapts a typed predicate. Values that are not a T fail the check.
func PredicateOf[T any](fn func(T) bool, opts ...Option) Validator {
	o := newOptions(MsgPredicate, KeyPredicate, KindPredicate, opts)
	name := o.name
	if name == "" {
		name = funcName(fn)
	}
	return &predicateCheck{
		fn: func(data any) bool {
			v, ok := data.(T)
			return ok && fn(v)
		},
		name: name,
		opts: o,
	}
}

func (p *predicateCheck) Validate(data any) (any, error) {
	if !p.fn(data) {
		return nil, p.opts.fail(map[string]any{
			"predicate": p.name,
			"data":      displayValue(data),
		})
	}
	return data, nil
}

// funcName returns the short runtime symbol of fn, e.g. "strings.HasPrefix"
// or "mypkg.init.func1" for closures.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "predicate"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "predicate"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

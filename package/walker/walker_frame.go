package walker

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

type Frame struct {
	Name     string  `json:"name"`
	Function string  `json:"function"`
	File     string  `json:"file"`
	Line     int     `json:"line"`
	Entry    uintptr `json:"-"`
}

func (r *Frame) String() string {
	return fmt.Sprintf("%s:%d", r.Name, r.Line)
}

type Naming string

const (
	NamingShort   Naming = "short"
	NamingPackage Naming = "package"
	NamingFull    Naming = "full"
)

func ParseNaming(value string) (Naming, error) {
	switch naming := Naming(strings.ToLower(strings.TrimSpace(value))); naming {
	case "":
		return NamingShort, nil
	case NamingShort, NamingPackage, NamingFull:
		return naming, nil
	default:
		return "", fmt.Errorf("unknown naming %q", value)
	}
}

// Render formats a fully qualified runtime function name.
//
//	full:    go.scnd.dev/open/stackwalk/core.(*Instance).Walker
//	package: core.(*Instance).Walker
//	short:   Walker
func Render(function string, naming Naming) string {
	switch naming {
	case NamingFull:
		return function
	case NamingPackage:
		return function[strings.LastIndex(function, "/")+1:]
	default:
		name := strings.TrimSuffix(function[strings.LastIndex(function, "/")+1:], "[...]")
		return name[strings.LastIndex(name, ".")+1:]
	}
}

// FunctionOf returns the fully qualified name of a function value, or an
// empty string when fn is not a function.
func FunctionOf(fn any) string {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func || value.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(value.Pointer())
	if f == nil {
		return ""
	}

	return strings.TrimSuffix(Unescape(f.Name()), "-fm")
}

// Unescape restores the dots the runtime escapes as %2e in the last
// element of an import path, e.g. gopkg.in/yaml%2ev3.Unmarshal.
func Unescape(function string) string {
	if !strings.Contains(function, "%2e") {
		return function
	}

	return strings.ReplaceAll(function, "%2e", ".")
}

package walker

import (
	"regexp"
	"strings"
)

// Predicate decides whether a rendered function name is accepted. A nil
// Predicate accepts everything.
type Predicate func(name string) bool

func Equal(name string) Predicate {
	return func(candidate string) bool {
		return candidate == name
	}
}

func HasPrefix(prefix string) Predicate {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}

func HasSuffix(suffix string) Predicate {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

func Contains(substr string) Predicate {
	return func(name string) bool {
		return strings.Contains(name, substr)
	}
}

func Match(expression *regexp.Regexp) Predicate {
	return expression.MatchString
}

func Not(predicate Predicate) Predicate {
	return func(name string) bool {
		return !predicate.Accept(name)
	}
}

func And(predicates ...Predicate) Predicate {
	return func(name string) bool {
		for _, predicate := range predicates {
			if !predicate.Accept(name) {
				return false
			}
		}
		return true
	}
}

func Or(predicates ...Predicate) Predicate {
	return func(name string) bool {
		for _, predicate := range predicates {
			if predicate.Accept(name) {
				return true
			}
		}
		return false
	}
}

// Accept treats a nil predicate as accepting.
func (r Predicate) Accept(name string) bool {
	return r == nil || r(name)
}

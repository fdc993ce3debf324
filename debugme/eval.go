package debugme

import (
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

// identifier matches binding names usable as expression variables.
var identifier = regexp.MustCompile(`^[\p{L}_][\p{L}\p{Nd}_]*$`)

// env returns the expression environment: every local and constant whose
// name is a plain identifier. Locals shadow constants of the same name.
func (s *Scope) env() map[string]any {
	env := map[string]any{}

	if s == nil {
		return env
	}

	for _, c := range []Category{CategoryConst, CategoryLocal} {
		for _, b := range s.sets[c] {
			if identifier.MatchString(b.Name) {
				env[b.Name] = b.Value
			}
		}
	}

	return env
}

// envVar is expr-lang's name for the whole environment.
const envVar = "$env"

// eval evaluates code as an expr-lang expression over [Scope.env]. Names the
// environment does not define are compile errors, so misspelled variables
// resolve to [Undefined] rather than nil.
//
// A bare identifier must be a variable of the environment. Builtins such as
// len or now are only reachable by calling them, and the environment itself
// is never exposed.
func (s *Scope) eval(code string) (val any, ok bool) {
	if code == "" || strings.Contains(code, envVar) {
		return Undefined, false
	}

	defer func() {
		if recover() != nil {
			val, ok = Undefined, false
		}
	}()

	env := s.env()

	if _, bound := env[code]; !bound && identifier.MatchString(code) {
		return Undefined, false
	}

	program, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return Undefined, false
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return Undefined, false
	}

	return out, true
}

// Package debugme prints the values of named bindings together with the
// location of the call, for quick inspection during development.
//
// # Basic Usage
//
//	a, b := 1, "two"
//	debugme.Me(nil, debugme.Locals("a", a, "b", b), nil)
//
// writes to stdout:
//
//	2025-01-02 15:04:05.123456 DEBUG Source: /src/app/main.go:12:in main.main
//	2025-01-02 15:04:05.123456 DEBUG a -=> 1
//	2025-01-02 15:04:05.123456 DEBUG b -=> "two"
//
// # Scopes
//
// Go cannot enumerate the variables of a running function, so the caller
// describes its scope with a [Scope]. It has four categories of bindings,
// which the automatic sweep reports in this order:
//
//   - locals, bound with [Locals] or [Scope.Local];
//   - instance fields, named with a leading "@", bound with [Scope.Field] or
//     [Scope.FieldsOf];
//   - shared (type-level) fields, named with a leading "@@", bound with
//     [Scope.Shared] or [Scope.SharedOf];
//   - constants, possibly qualified ("Type::Name"), bound with [Scope.Const]
//     or [Scope.ConstsOf].
//
// # Selecting Bindings
//
// A [Selector] names the bindings to report, in order:
//
//	debugme.Me(nil, sc, func() any { return []string{"b", "a"} })
//	debugme.Me(nil, sc, debugme.Names("@count", "Limit"))
//
// Names not bound in the scope are evaluated as expressions over its locals
// and constants using [github.com/expr-lang/expr], so "user.Name" or
// "len(items)" work too. A name that still cannot be resolved is reported as
// <undefined>. The pseudo-name "backtrace" reports the caller's stack.
//
// # Configuration
//
// The first argument of [Report], [Me], and [LogMe] configures a single call.
// It can be a tag:
//
//	debugme.Me("checkout", sc, nil)
//
// a mapping of option names to values (see [Options]):
//
//	debugme.Me(debugme.Options{"header": false, "levels": 3}, sc, nil)
//
// or functional options:
//
//	debugme.Me([]debugme.Option{debugme.WithTime(false)}, sc, nil)
//
// See [Resolve] for the defaults.
//
// # Enabling and Disabling
//
// Reporting is enabled unless the DEBUG_ME environment variable is set to
// "0", "false", "no", "off", or "" when the package is loaded. [SetEnabled]
// changes the setting at run time. A disabled call does nothing: it does not
// even call the selector.
package debugme

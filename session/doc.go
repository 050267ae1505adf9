// Package session holds the caller-owned state of the interactive views:
// which tab is shown, the parameters of every tab, the last generated
// ranging code and the BOC kind whose standard parameters were last
// applied.
//
// A State replaces process-wide globals. It is created from defaults
// (DefaultState) or from a YAML file (LoadConfig, ParseConfig) and is then
// threaded explicitly through the render functions.
//
// Unknown enumerated values never fail: they fall back to the documented
// default of their package and, when a Logger is set, the substitution is
// logged. Only unreadable files, malformed YAML and impossible numbers
// (negative rates or lengths, NaN) are reported as errors.
package session

// Package panels holds the concrete dashboard panels: a file tree, a
// diagnostics list and a read-only terminal output view.
//
// Each panel ships with illustrative sample data and exposes a setter
// (SetItems, SetDiagnostics, AppendLines) through which a real feed can
// replace it.
package panels

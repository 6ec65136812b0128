// Package ui implements the line-oriented terminal surface used by the operator console.
//
// A [Console] pairs an output writer with a [LineReader]. Output is styled with lipgloss (tables through
// lipgloss/table, boxed field summaries, colored notices) and command hints are rendered from bubbles/key bindings
// with bubbles/help, so disabled commands simply drop out of the hint line.
//
// Input comes from [TerminalReader] (peterh/liner, with history) on an interactive terminal or from
// [BufferedReader] when stdin is piped.
package ui

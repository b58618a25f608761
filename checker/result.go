package checker

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
)

// A Result describes the outcome of a search.
//
// Either the reachable state space was exhausted with the invariant holding
// everywhere, or a violation was found together with a counterexample trace.
// Finding a violation is a successful search outcome, not an error.
type Result[S any] struct {
	// Exhausted is true if the frontier drained without a violation.
	Exhausted bool

	// Violation is the state breaking the invariant. Only meaningful if
	// Exhausted is false.
	Violation S

	// Trace is the counterexample path from an initial state (index 0) to
	// the violating state. nil if Exhausted is true.
	Trace []S

	// Stats holds the final exploration counters.
	Stats Snapshot
}

// Response generates a response from the result.
//
// Returns two parameters, result and description.
// Result is true if the invariant holds on the explored state space,
// false otherwise.
// If result is false the description contains the violating state followed
// by the counterexample trace, one state per line, indexed from the initial
// state.
func (r *Result[S]) Response() (bool, string) {
	if r.Exhausted {
		return true, fmt.Sprintf("Invariant holds. Explored %v unique states (%v generated).", r.Stats.Unique, r.Stats.Generated)
	}
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 0, ' ', 0)
	out := fmt.Sprintf("Invariant violated, last state: %v. Trace: \n", r.Violation)
	for i, element := range r.Trace {
		fmt.Fprintf(wrt, "State %v:\t%v \n", i, element)
	}
	wrt.Flush()
	out += buffer.String()
	return false, out
}

// WriteReport writes the description of the result to the writer.
func (r *Result[S]) WriteReport(w io.Writer) error {
	_, desc := r.Response()
	_, err := fmt.Fprintln(w, desc)
	return err
}

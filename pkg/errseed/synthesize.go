// synthesize.go triggers real runtime faults and captures their stack
// traces for use as record content.

package errseed

import (
	"fmt"
	"math/rand"
	"runtime/debug"
	"strconv"
)

// FaultKind identifies one of the five induced fault categories.
type FaultKind string

const (
	// FaultArithmetic is an integer division by zero.
	FaultArithmetic FaultKind = "arithmetic"

	// FaultIndex is a slice access past the end.
	FaultIndex FaultKind = "index"

	// FaultKey is a lookup of a key absent from a map.
	FaultKey FaultKind = "key"

	// FaultParse is a numeric parse of non-numeric text.
	FaultParse FaultKind = "parse"

	// FaultType is a failed interface type assertion.
	FaultType FaultKind = "type"
)

// faultKinds lists all categories for uniform random selection.
var faultKinds = []FaultKind{FaultArithmetic, FaultIndex, FaultKey, FaultParse, FaultType}

// Exception is a synthesized fault: its message and the genuine call-stack
// trace captured at the point of failure. Created fresh per dispatch and
// never shared across calls.
type Exception struct {
	// Kind is the fault category that was triggered.
	Kind FaultKind

	// Message is the fault's error message.
	Message string

	// StackTrace is the full multi-line goroutine trace captured where
	// the fault fired. It is real runtime output, not a fabricated
	// string, so trace-scanning backends see authentic frames.
	StackTrace string
}

// Synthesize triggers a uniformly chosen fault category and captures the
// resulting message and stack trace. It never fails: every fault is
// recovered locally and converted to data.
func Synthesize(rng *rand.Rand) Exception {
	return SynthesizeKind(faultKinds[rng.Intn(len(faultKinds))])
}

// SynthesizeKind triggers a specific fault category. Unknown kinds fall
// back to FaultArithmetic.
func SynthesizeKind(kind FaultKind) (exc Exception) {
	exc.Kind = kind
	defer func() {
		if r := recover(); r != nil {
			exc.Message = formatRecovered(r)
			exc.StackTrace = string(debug.Stack())
		}
	}()

	switch kind {
	case FaultIndex:
		triggerIndexFault()
	case FaultKey:
		triggerKeyFault()
	case FaultParse:
		triggerParseFault()
	case FaultType:
		triggerTypeFault()
	default:
		exc.Kind = FaultArithmetic
		triggerArithmeticFault()
	}
	return exc
}

// The trigger functions each live in their own frame so the captured
// trace names the originating fault site.

func triggerArithmeticFault() {
	samples := []int{12, 48, 7}
	window := len(samples) - 3
	_ = samples[0] / window
}

func triggerIndexFault() {
	shards := []string{"alpha", "beta", "gamma"}
	i := len(shards)*3 + 1
	_ = shards[i]
}

func triggerKeyFault() {
	settings := map[string]string{"mode": "strict", "region": "us-east1"}
	key := "replica_count"
	if _, ok := settings[key]; !ok {
		panic(fmt.Errorf("required key %q not found in settings map", key))
	}
}

func triggerParseFault() {
	if _, err := strconv.Atoi("not_a_number"); err != nil {
		panic(err)
	}
}

func triggerTypeFault() {
	var count any = "forty-two"
	_ = count.(int)
}

// formatRecovered formats a recovered panic value as a string.
func formatRecovered(recovered any) string {
	if recovered == nil {
		return "<nil>"
	}
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", recovered)
}

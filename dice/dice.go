// Package dice parses and evaluates compact dice notation such as "3d6" or
// "2d20k1" (roll two d20, keep the highest one).
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxCount bounds the number of dice in a single expression so a request
// cannot ask for unbounded work.
const MaxCount = 100

// NotationError reports a notation string that failed to parse or validate.
type NotationError struct {
	Notation string
	Reason   string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("invalid dice notation %q: %s", e.Notation, e.Reason)
}

// Expression is the parsed form of a dice notation string.
type Expression struct {
	Count       int
	Sides       int
	KeepHighest int // 0 when no keep clause is present
}

// Result captures one evaluation of an Expression.
type Result struct {
	Expression Expression
	Rolls      []int // every die rolled, in roll order
	Kept       []int // the rolls counted toward Total
	Total      int
}

var notationRE = regexp.MustCompile(`^(\d+)?[dD](\d+)(?:[kK](\d+))?$`)

// Parse parses a notation string of the form <count>?d<sides>(k<keep>)?.
// The "d" and "k" markers are case-insensitive and surrounding whitespace is
// tolerated; count defaults to 1 when omitted.
//
// Constraints:
//
//   - 1 <= count <= MaxCount
//   - sides >= 2
//   - 1 <= keep <= count when a keep clause is present
//
// Violations return a *NotationError naming the offending field. Parse never
// clamps values.
func Parse(notation string) (Expression, error) {
	trimmed := strings.TrimSpace(notation)
	m := notationRE.FindStringSubmatch(trimmed)
	if m == nil {
		return Expression{}, &NotationError{
			Notation: notation,
			Reason:   "expected <count>d<sides> with optional k<keep>, e.g. 3d6 or 2d20k1",
		}
	}

	expr := Expression{Count: 1}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Expression{}, &NotationError{Notation: notation, Reason: "count is not a valid integer"}
		}
		expr.Count = n
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expression{}, &NotationError{Notation: notation, Reason: "sides is not a valid integer"}
	}
	expr.Sides = sides
	hasKeep := m[3] != ""
	if hasKeep {
		keep, err := strconv.Atoi(m[3])
		if err != nil {
			return Expression{}, &NotationError{Notation: notation, Reason: "keep is not a valid integer"}
		}
		expr.KeepHighest = keep
	}

	if expr.Count < 1 || expr.Count > MaxCount {
		return Expression{}, &NotationError{
			Notation: notation,
			Reason:   fmt.Sprintf("count must be between 1 and %d, got %d", MaxCount, expr.Count),
		}
	}
	if expr.Sides < 2 {
		return Expression{}, &NotationError{
			Notation: notation,
			Reason:   fmt.Sprintf("sides must be at least 2, got %d", expr.Sides),
		}
	}
	if hasKeep && (expr.KeepHighest < 1 || expr.KeepHighest > expr.Count) {
		return Expression{}, &NotationError{
			Notation: notation,
			Reason:   fmt.Sprintf("keep must be between 1 and count (%d), got %d", expr.Count, expr.KeepHighest),
		}
	}
	return expr, nil
}

// String returns the canonical notation. The count is always printed, so
// Parse(e.String()) yields an Expression equal to e.
func (e Expression) String() string {
	if e.KeepHighest != 0 {
		return fmt.Sprintf("%dd%dk%d", e.Count, e.Sides, e.KeepHighest)
	}
	return fmt.Sprintf("%dd%d", e.Count, e.Sides)
}

// Roll evaluates the expression with the shared random source.
func (e Expression) Roll() Result {
	return e.roll(nil)
}

// RollSeeded evaluates the expression with a deterministic random source.
// Given the same seed and expression it always produces the same Result.
func (e Expression) RollSeeded(seed int64) Result {
	return e.roll(rand.New(rand.NewSource(seed)))
}

func (e Expression) roll(rng *rand.Rand) Result {
	rolls := make([]int, e.Count)
	for i := range rolls {
		rolls[i] = rollDie(rng, e.Sides)
	}

	kept := rolls
	if e.KeepHighest != 0 {
		kept = append([]int(nil), rolls...)
		sort.Sort(sort.Reverse(sort.IntSlice(kept)))
		kept = kept[:e.KeepHighest]
	}

	total := 0
	for _, v := range kept {
		total += v
	}

	return Result{
		Expression: e,
		Rolls:      rolls,
		Kept:       kept,
		Total:      total,
	}
}

// Roll parses and evaluates a notation string in one step.
func Roll(notation string) (Result, error) {
	expr, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}
	return expr.Roll(), nil
}

// String formats the result with the full roll sequence and, when a keep
// clause applies, the kept subset.
func (r Result) String() string {
	if r.Expression.KeepHighest != 0 {
		return fmt.Sprintf("%s: rolled %v, kept %v, total %d", r.Expression, r.Rolls, r.Kept, r.Total)
	}
	return fmt.Sprintf("%s: rolled %v, total %d", r.Expression, r.Rolls, r.Total)
}

func rollDie(rng *rand.Rand, sides int) int {
	if rng == nil {
		return rand.Intn(sides) + 1
	}
	return rng.Intn(sides) + 1
}

package variant

import "strconv"

var digitWords = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// DemoSpace builds the built-in int/string space used by the CLI and as a
// fixture: registries sized 2, 2, 2, 3 and 3, for 72 combinations in total.
//
// The "max" binary op deliberately declares no identity element, so laws
// reading Identity must filter it out upstream.
func DemoSpace() *Space[int, string] {
	s := NewSpace[int, string]()

	s.Endos().Register(NewFunc("increment", func(n int) int { return n + 1 }))
	s.Endos().Register(NewFunc("negate", func(n int) int { return -n }))

	s.Heteros().Register(NewFunc("decimal", strconv.Itoa))
	s.Heteros().Register(NewFunc("hex", func(n int) string {
		return strconv.FormatInt(int64(n), 16)
	}))

	s.Binaries().Register(NewBinary("sum",
		func(x, y int) int { return x + y },
		WithIdentity(0), MarkAssociative[int](), MarkCommutative[int]()))
	s.Binaries().Register(NewBinary("max",
		func(x, y int) int {
			if x > y {
				return x
			}
			return y
		},
		MarkAssociative[int](), MarkCommutative[int]()))

	s.Predicates().Register(NewFunc("even", func(n int) bool { return n%2 == 0 }))
	s.Predicates().Register(NewFunc("positive", func(n int) bool { return n > 0 }))
	s.Predicates().Register(NewFunc("zero", func(n int) bool { return n == 0 }))

	s.Partials().Register(NewPartial("halfOfEven", func(n int) (string, bool) {
		if n%2 != 0 {
			return "", false
		}
		return strconv.Itoa(n / 2), true
	}))
	s.Partials().Register(NewPartial("digitWord", func(n int) (string, bool) {
		if n < 0 || n >= len(digitWords) {
			return "", false
		}
		return digitWords[n], true
	}))
	s.Partials().Register(NewPartial("hexOfPositive", func(n int) (string, bool) {
		if n <= 0 {
			return "", false
		}
		return strconv.FormatInt(int64(n), 16), true
	}))

	return s
}

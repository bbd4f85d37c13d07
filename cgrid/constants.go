package cgrid

// Method tags used as error prefixes.
const (
	methodBuildLines  = "BuildLines"
	methodFixedValues = "FixedValues"
	methodLinspace    = "Linspace"
	methodParseBound  = "ParseBound"
)

// DefaultSteps is the number of samples per probe line when the caller has
// no preference.
const DefaultSteps = 100

// MinSteps is the smallest meaningful line resolution: two points make a segment.
const MinSteps = 2

// MaxFixedValues caps the fixed coordinates one Bound may select.
const MaxFixedValues = 10000

// MaxGridSamples caps the total number of samples, summed over every
// requested family, that one grid may produce.
const MaxGridSamples = 4_000_000

// edgeTolerance is the relative slack (in units of Step) used to decide
// whether High lands on a step boundary despite float rounding.
const edgeTolerance = 1e-9

// defaultParseStep is the Step assigned by ParseBound to "lo,hi" input.
const defaultParseStep = 1.0

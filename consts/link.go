package consts

// Composite link defaults
const (
	// StackParam is the query parameter that carries the encoded back stack
	StackParam = "stack"

	// StackSeparator delimits concrete paths inside the decoded stack value
	StackSeparator = "|"
)

// Separators and markers used when splitting concrete paths and templates
const (
	RuneFwdSlash   = '/'
	RuneQuestion   = '?'
	RuneOpenBrace  = '{'
	RuneCloseBrace = '}'

	StrFwdSlash  = "/"
	StrQuestion  = "?"
	StrAmpersand = "&"
	StrEquals    = "="
)

// Strategy names as they appear in config and on the command line
const (
	StrategySequential = "sequential"
	StrategyBatch      = "batch"
)

// Conflict modes as they appear in config and manifests
const (
	ConflictFirstMatch   = "first_match"
	ConflictPreferStatic = "prefer_static"
	ConflictStrict       = "strict"
)

// Struct tag used by struct route factories
const RouteTag = "route"

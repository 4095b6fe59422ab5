package seedmodels

import _ "embed"

// DefaultSeed is the initial question bank shipped with the binary.
//
//go:embed initial_questions.json
var DefaultSeed []byte

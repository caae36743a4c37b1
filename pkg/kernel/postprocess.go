package kernel

import "github.com/molkit/bitkernel/pkg/tensor"

// Postprocess is a final transformation applied to a raw similarity
// matrix before it is returned. The Key identifies the configuration:
// the engine cache compares Keys, never function pointers, so two
// Postprocess values with the same Key must behave identically.
type Postprocess struct {
	Key string
	Fn  func(*tensor.Dense) *tensor.Dense
}

// Identity returns the raw similarity matrix unchanged. It is the
// default postprocess for every engine.
var Identity = Postprocess{
	Key: "identity",
	Fn:  func(m *tensor.Dense) *tensor.Dense { return m },
}

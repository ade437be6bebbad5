package observable

import "errors"

var (
	// ErrStreamExhausted is returned by Subject.Next when its generator
	// cannot produce a further value.
	ErrStreamExhausted = errors.New("stream exhausted")

	// ErrNoGenerator is returned by Subject.Next on a subject built
	// without a generator.
	ErrNoGenerator = errors.New("subject has no generator")
)

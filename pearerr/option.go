package pearerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option     { return func(e *Error) { e.Message = msg } }
func WithIndex(index int) Option        { return func(e *Error) { e.Index = index } }
func WithElement(element string) Option { return func(e *Error) { e.Element = element } }
func WithAttribute(name string) Option  { return func(e *Error) { e.Attribute = name } }
func WithCause(err error) Option        { return func(e *Error) { e.Err = err } }

package pipeline

// Processor is one stage of the front-end pipeline: it reads what
// earlier stages wrote into ctx and writes its own contribution, or
// sets ctx.Diagnostic to report a fatal error.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

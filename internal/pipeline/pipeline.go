package pipeline

// Pipeline runs a fixed sequence of Processors over a Context,
// stopping at the first stage that reports a diagnostic. There is no
// error accumulation; a failing stage ends the run.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from its ordered stages.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes each stage in order against ctx, returning as soon as
// a stage sets ctx.Diagnostic.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if ctx.Failed() {
			return ctx
		}
	}
	return ctx
}

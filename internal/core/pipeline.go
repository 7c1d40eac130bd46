package core

import (
	"sort"
)

// Pipeline holds a collection of processors and manages their execution
type Pipeline struct {
	processors []Processor
}

// NewPipeline creates a pipeline with the given processors
func NewPipeline(processors ...Processor) *Pipeline {
	p := &Pipeline{processors: make([]Processor, 0, len(processors))}
	for _, proc := range processors {
		p.AddProcessor(proc)
	}
	return p
}

// AddProcessor adds a processor and keeps the list ordered by priority
// (equal priorities keep insertion order)
func (p *Pipeline) AddProcessor(processor Processor) {
	p.processors = append(p.processors, processor)
	sort.SliceStable(p.processors, func(i, j int) bool {
		return p.processors[i].Priority() < p.processors[j].Priority()
	})
}

// ExecuteRequest runs every OnRequest in priority order, stopping at the first error
func (p *Pipeline) ExecuteRequest(ctx *ExtractContext, req *InferenceRequest) error {
	for _, processor := range p.processors {
		if err := processor.OnRequest(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteResponse runs every OnResponse in priority order, stopping at the first error
func (p *Pipeline) ExecuteResponse(ctx *ExtractContext, resp *InferenceResponse) error {
	for _, processor := range p.processors {
		if err := processor.OnResponse(ctx, resp); err != nil {
			return err
		}
	}
	return nil
}

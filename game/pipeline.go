package game

import (
	"context"
	"reflect"
	"time"
)

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline runs the registered systems in order against one world, once per
// frame, then flushes the frame's buffered effects to the cue sink.
type Pipeline struct {
	world       *World
	sink        CueSink
	systems     []System
	systemStats []*systemStatsInternal
}

// NewPipeline creates a pipeline over the given world. A nil sink silences
// cues.
func NewPipeline(world *World, sink CueSink) *Pipeline {
	if sink == nil {
		sink = NopSink{}
	}
	return &Pipeline{
		world:   world,
		sink:    sink,
		systems: make([]System, 0),
	}
}

// Register appends a system to the execution order.
func (p *Pipeline) Register(system System) {
	p.systems = append(p.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	p.systemStats = append(p.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time, then
// flushes effects.
func (p *Pipeline) Once(dt float64) {
	frame := newFrame(dt, p.world)

	for i, system := range p.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := p.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Effects.Flush(p.sink)
}

// Run executes the pipeline repeatedly at the given interval until the
// context is cancelled. Intended for headless drivers; interactive front-ends
// call Once from their own frame callback.
func (p *Pipeline) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			p.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (p *Pipeline) Stats() *PipelineStats {
	stats := &PipelineStats{
		SystemCount: len(p.systems),
		Systems:     make([]SystemStats, len(p.systemStats)),
	}

	var totalExecs int64
	for i, internal := range p.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

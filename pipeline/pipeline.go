package pipeline

import (
	"log"
	"strings"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
	"github.com/go-sif/plyr/logging"
	"github.com/go-sif/plyr/stats"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// Transform is a single step of a Pipeline: one table in, one table out
type Transform func(in plyr.TableRef) (plyr.TableRef, error)

// Step is a recorded Pipeline step, either a NamedVerb or a RawFunction
type Step interface {
	String() string // String returns the name of this Step
	apply(in plyr.TableRef) (plyr.TableRef, error)
}

// NamedVerb is a step which calls a verb by canonical name with recorded arguments
type NamedVerb struct {
	Name string
	Args []interface{}
	fn   Transform
}

// String returns the canonical verb name
func (v NamedVerb) String() string {
	return v.Name
}

func (v NamedVerb) apply(in plyr.TableRef) (plyr.TableRef, error) {
	return v.fn(in)
}

// RawFunction is a step which calls an arbitrary Transform
type RawFunction struct {
	Name string
	Fn   Transform
}

// String returns the name the function was piped under
func (f RawFunction) String() string {
	return f.Name
}

func (f RawFunction) apply(in plyr.TableRef) (plyr.TableRef, error) {
	return f.Fn(in)
}

// Pipeline is an ordered, append-only sequence of deferred steps. A Pipeline holds no data and may be
// run any number of times, including concurrently once it is fully built. Building is not safe for
// concurrent use.
type Pipeline struct {
	steps    []Step
	err      *multierror.Error
	out      *log.Logger
	logLevel int
	logger   *logging.Logger
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger makes a Pipeline log its runs to l
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) { p.out = l }
}

// WithLogLevel sets the minimum level of logged messages. Defaults to logging.DebugLevel.
func WithLogLevel(level int) Option {
	return func(p *Pipeline) { p.logLevel = level }
}

// New creates an empty Pipeline
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logLevel: logging.DebugLevel}
	for _, opt := range opts {
		opt(p)
	}
	if p.out != nil {
		p.logger = logging.New(p.out, p.logLevel)
	}
	return p
}

// Steps returns a copy of the recorded steps
func (p *Pipeline) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Len returns the number of recorded steps
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Err returns the errors recorded while building this Pipeline, if any
func (p *Pipeline) Err() error {
	return p.err.ErrorOrNil()
}

// String lists the step names of this Pipeline
func (p *Pipeline) String() string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.String()
	}
	return strings.Join(names, " | ")
}

// Verb appends a call to a verb by name (or alias) with arguments. Unknown verbs and malformed
// arguments are reported by Run and Err.
func (p *Pipeline) Verb(name string, args ...interface{}) *Pipeline {
	canonical := Canonical(name)
	bind, ok := registry[canonical]
	if !ok {
		p.err = multierror.Append(p.err, errors.InvalidArgumentsError{Verb: name, Reason: "no such verb"})
		return p
	}
	fn, err := bind(args)
	if err != nil {
		p.err = multierror.Append(p.err, err)
		return p
	}
	p.steps = append(p.steps, NamedVerb{Name: canonical, Args: args, fn: fn})
	return p
}

// Pipe appends an arbitrary Transform under a name
func (p *Pipeline) Pipe(name string, fn Transform) *Pipeline {
	if fn == nil {
		p.err = multierror.Append(p.err, errors.InvalidArgumentsError{Verb: name, Reason: "a function is required"})
		return p
	}
	p.steps = append(p.steps, RawFunction{Name: name, Fn: fn})
	return p
}

// Then appends the steps of another Pipeline
func (p *Pipeline) Then(other *Pipeline) *Pipeline {
	p.steps = append(p.steps, other.steps...)
	if other.err != nil {
		p.err = multierror.Append(p.err, other.err.Errors...)
	}
	return p
}

// Transform returns this Pipeline as a single Transform, so that it can be piped into another
func (p *Pipeline) Transform() Transform {
	return p.Run
}

// RunTable runs this Pipeline on a flat table
func (p *Pipeline) RunTable(t *frame.Table) (plyr.TableRef, error) {
	return p.Run(plyr.NewFlat(t))
}

// Run applies every step in order, each to the output of the previous one. The first failing step
// stops the run and its error is returned unchanged. An empty Pipeline returns its input.
func (p *Pipeline) Run(in plyr.TableRef) (plyr.TableRef, error) {
	return p.run(in, nil)
}

// RunWithStats is Run, additionally recording statistics about the run
func (p *Pipeline) RunWithStats(in plyr.TableRef) (plyr.TableRef, *stats.RunStatistics, error) {
	rs := &stats.RunStatistics{}
	out, err := p.run(in, rs)
	return out, rs, err
}

func (p *Pipeline) run(in plyr.TableRef, rs *stats.RunStatistics) (plyr.TableRef, error) {
	if err := p.err.ErrorOrNil(); err != nil {
		return nil, err
	}
	if err := plyr.Validate("run", in); err != nil {
		return nil, err
	}
	var runID string
	if p.logger.Enabled(logging.ErrorLevel) {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		runID = id.String()
	}
	if rs != nil {
		rs.Start(len(p.steps))
		defer rs.Finish()
	}
	p.logger.Debugf("run %s: starting %d steps on %d rows", runID, len(p.steps), in.Table().NumRows())

	current := in
	for i, step := range p.steps {
		if rs != nil {
			rs.StartStep(step.String(), current.Table().NumRows())
		}
		next, err := step.apply(current)
		if err != nil {
			p.logger.Errorf("run %s: step %d (%s) failed: %v", runID, i, step, err)
			return nil, err
		}
		if plyr.Validate(step.String(), next) != nil {
			return nil, errors.InvalidArgumentsError{Verb: step.String(), Reason: "step produced no table"}
		}
		if rs != nil {
			rs.EndStep(next.Table().NumRows())
		}
		p.logger.Tracef("run %s: step %d (%s) produced %d rows", runID, i, step, next.Table().NumRows())
		current = next
	}
	p.logger.Debugf("run %s: finished", runID)
	return current, nil
}

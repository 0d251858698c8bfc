// Package pipeline records sequences of plyr verbs and replays them on demand.
//
//	p := pipeline.New().
//		GroupBy([]string{"species"}).
//		Filter(func(t *frame.Table) (interface{}, error) { return t.MustColumn("mass").Gt(3000), nil }).
//		Summarise(plyr.Col("n", accumulators.Count()))
//	out, err := p.RunTable(penguins)
//
// Steps are introspectable: every step is either a NamedVerb, recording a canonical verb name and its
// arguments, or a RawFunction added with Pipe. Verb names may be given by alias ("head", "tail",
// "summarize", "groupby"), and are recorded by canonical name.
package pipeline

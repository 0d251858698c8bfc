// Package accumulators provides common summaries for use with plyr.Summarise and plyr.Mutate
package accumulators

import (
	"github.com/go-sif/plyr"
)

// Describe returns the count, mean, min and max of a numeric column as summaries named
// col_count, col_mean, col_min and col_max
func Describe(col string) []plyr.Expr {
	return []plyr.Expr{
		plyr.Col(col+"_count", NonMissing(col)),
		plyr.Col(col+"_mean", Mean(col)),
		plyr.Col(col+"_min", Min(col)),
		plyr.Col(col+"_max", Max(col)),
	}
}

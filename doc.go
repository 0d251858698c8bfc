// Package plyr provides a grammar of verbs for tabular data: select, filter, slice, arrange, mutate,
// summarise, group_by, tally, joins and more, over tables from the frame package.
//
// Every verb accepts a TableRef, which is either a Flat table or a Grouped view created by GroupBy.
// Group-invariant verbs (select, drop, relocate, rename, joins) act on the whole underlying table;
// row and value verbs (filter, slices, arrange, distinct, mutate, transmute) act on each group in
// turn and concatenate the results in group order. Either way, grouped input yields output regrouped
// with the original GroupSpec, so a verb that removes a grouping key fails with a KeyResolutionError.
// Summarise, Tally and Ungroup always yield a Flat table.
//
// Verbs can be chained eagerly, or recorded and replayed with the pipeline package.
package plyr

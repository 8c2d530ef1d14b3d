// Package diffview renders the difference between a finding's original text
// and its suggested replacement.
//
// The line diff and the hunk grouping come from go-difflib's SequenceMatcher.
// Runs of unchanged lines are cut down to ContextLines on each side of a
// change, and hunks are separated by a dashed rule. Inside a replaced block
// old and new lines are paired by position and diffed again rune by rune so
// the changed characters can be emphasised.
package diffview

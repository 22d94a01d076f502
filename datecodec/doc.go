// Package datecodec converts between the date formats used on the GitHub v2
// wire and time.Time.
//
// Four format families are supported, selected by name:
//
//	github  2009/03/21 18:01:48 -0700
//	commit  2009-03-21T18:01:48-07:00
//	iso     2009-03-21T18:01:48Z
//	user    github, or 2009-03-21T18:01:48Z
//
// Parsing keeps the wall clock and drops the offset; parsed values are placed
// in UTC. Formatting renders the wall clock of the given time and appends the
// constant offset of the family, so github and commit round trips replace the
// original offset with -0700 / -07:00. The user family reads two grammars
// but always writes the github one.
//
//	t, err := datecodec.Parse(datecodec.GitHub, "2009/03/21 18:01:48 -0700")
//	s, err := datecodec.Format(datecodec.Commit, t)
package datecodec

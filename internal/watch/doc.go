// Package watch re-runs a callback whenever layer files change on disk. Bursts
// of events (editors often write, rename and chmod in quick succession) are
// coalesced into one call.
package watch

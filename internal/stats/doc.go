// Package stats defines the statistics-collection seam kept out
// of core scope ("statistics collection" is listed among the external
// collaborators). Hook is the narrow contract a collector
// implements; the sender and receiver codecs call it but never depend on
// any particular collector. See stats/promstats for a reference collector.
package stats

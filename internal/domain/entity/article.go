// Package entity defines the domain records served by the API and the error
// kinds every layer uses to report failures.
package entity

// Article is a single row of the article table.
// PublicationDate is kept as the caller supplied it (YYYY-MM-DD on the way out);
// the database is the only place the date is parsed.
type Article struct {
	ID              int64
	Name            string
	Description     string
	PublicationDate string
	Author          string
	SystemAgencyID  int64
}

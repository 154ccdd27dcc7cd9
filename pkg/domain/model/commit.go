package model

import "time"

// Commit is a single version-control commit as yielded by a CommitSource.
type Commit struct {
	Hash         string
	Author       string
	Timestamp    time.Time
	Message      string
	ChangedFiles []string
}

// ShortHash returns the first eight characters of the hash.
func (c *Commit) ShortHash() string {
	return shortHash(c.Hash)
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}

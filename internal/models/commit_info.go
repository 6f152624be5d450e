package models

import "strings"

// CommitInfo contains information about a git commit under validation
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Subject is the first line of the commit message
	Subject string
	// Message is the full commit message (header, body, trailers)
	Message string
	// Author is the commit author name
	Author string
	// Email is the commit author email
	Email string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message, author, email string) CommitInfo {
	subject, _, _ := strings.Cut(message, "\n")
	return CommitInfo{
		Hash:    hash,
		Subject: strings.TrimRight(subject, "\r"),
		Message: message,
		Author:  author,
		Email:   email,
	}
}

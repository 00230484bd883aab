// Package assessment implements the scored readiness assessment: a fixed ordered
// list of single-choice questions, the answers a visitor gives while stepping
// through it, and the weighted score and tier derived from those answers.
//
// A Session is plain in-memory state with synchronous transitions. It is not safe
// for concurrent use; callers that share one across goroutines must serialize access.
package assessment

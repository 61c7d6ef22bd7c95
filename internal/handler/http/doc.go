// Package http is the transport of the tabkeeper background daemon.
//
// Front ends post [models.Message] values to /api/messages; the daemon keeps
// the last reported tab selection in its session and answers
// /api/selection and /api/version. Every request gets a trace id and an
// access log line.
package http

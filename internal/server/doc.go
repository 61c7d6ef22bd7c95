// Package server runs the tabkeeper background daemon.
//
// It serves the daemon HTTP API next to the background workers, stops on
// SIGINT, SIGTERM or SIGQUIT (or when the parent context ends) and shuts
// both down gracefully.
package server

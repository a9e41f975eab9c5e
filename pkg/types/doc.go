// Package types defines the domain entities, configuration, and standard
// errors shared by the Gourava storage layer and its consumers.
package types

// Package gourava exposes module-level metadata.
package gourava

// Version is the current release version of the gourava module.
const Version = "0.1.0"

// Package platform identifies the build target a library is resolved for and
// provides the small set of cross-platform filesystem helpers the staging
// engine needs. Targets are a closed enumeration: one desktop Windows target,
// one desktop Linux target and four Android ABIs.
package platform

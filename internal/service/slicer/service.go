// Package slicer compiles slice requests against a schema registry into
// query and display schemas. Compilation is pure: the registry is read-only
// after construction and every call allocates fresh output, so a single
// Service is safe for concurrent use.
package slicer

import "sliceql/internal/domain"

// Service compiles slice requests against one registry.
type Service struct {
	reg *domain.Registry
}

// NewService returns a compiler bound to the given registry.
func NewService(reg *domain.Registry) *Service {
	return &Service{reg: reg}
}

// Registry returns the registry the service compiles against.
func (s *Service) Registry() *domain.Registry { return s.reg }

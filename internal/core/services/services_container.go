package services

import (
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/brew_notes_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Batch:    NewBatchService(repos.BatchRepo, options...),
		Excise:   NewExciseService(repos.SubmissionRepo, options...),
		DutyRate: NewDutyRateService(repos.DutyRateRepo, options...),
	}
}

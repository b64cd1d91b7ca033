package services

import (
	portsrepo "github.com/sporax/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/sporax/currency_converter_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(currencyRepo portsrepo.CurrencyRepository, rateRepo portsrepo.RateRepository) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The converter sits on top of the registry.
	container.Registry = NewRegistryService(currencyRepo, rateRepo)
	container.Converter = NewConverterService(container.Registry)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RegistrySvcFacade  = (*RegistryService)(nil)
	_ portssvc.ConverterSvcFacade = (*ConverterService)(nil)
)

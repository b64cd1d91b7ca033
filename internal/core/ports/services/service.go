package services

// ServiceContainer holds instances of all the application services. It is the
// entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	Registry  RegistrySvcFacade
	Converter ConverterSvcFacade
}

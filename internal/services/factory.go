package services

// ServiceContainer holds all service instances
type ServiceContainer struct {
	MessageService     MessageService
	NatureImageService NatureImageService
	FibonacciService   FibonacciService
	Defaults           ParamDefaults
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Defaults    ParamDefaults
	ImagePicker ImagePicker
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) *ServiceContainer {
	if config == nil {
		config = &ServiceConfig{}
	}

	defaults := DefaultParamDefaults()
	if config.Defaults.GuestName != "" {
		defaults.GuestName = config.Defaults.GuestName
	}
	if config.Defaults.NatureKeyword != "" {
		defaults.NatureKeyword = config.Defaults.NatureKeyword
	}
	if config.Defaults.FibonacciNumber != "" {
		defaults.FibonacciNumber = config.Defaults.FibonacciNumber
	}

	return &ServiceContainer{
		MessageService:     NewMessageService(),
		NatureImageService: NewNatureImageService(config.ImagePicker),
		FibonacciService:   NewFibonacciService(),
		Defaults:           defaults,
	}
}

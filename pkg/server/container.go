package server

import (
	"fmt"

	"hackathon-demo-api/internal/config"
	"hackathon-demo-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	serviceConfig := &services.ServiceConfig{
		Defaults: services.ParamDefaults{
			GuestName:     cfg.Defaults.GuestName,
			NatureKeyword: cfg.Defaults.NatureKeyword,
		},
	}

	return &Container{
		Config:   cfg,
		Services: services.NewServiceContainer(serviceConfig),
	}, nil
}

// Close releases container resources. The services hold no connections, so
// it only drops the references.
func (c *Container) Close() error {
	c.Services = nil
	return nil
}

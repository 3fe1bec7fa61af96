// Package app provides service initialization.
package app

import (
	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/catalog"
	"github.com/schoolform/order-service/internal/i18n"
	"github.com/schoolform/order-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *catalog.Catalog
	Manager *service.FormManager
	Forms   service.OrderFormService
}

// InitializeServices loads the catalog and wires the form lifecycle services.
func InitializeServices(
	catalogCfg config.CatalogConfig,
	sessionCfg config.SessionConfig,
	clients *ClientComponents,
	dbComponents *DatabaseComponents,
) (*ServiceComponents, error) {
	var cat *catalog.Catalog
	var err error
	if catalogCfg.Path != "" {
		cat, err = catalog.LoadFile(catalogCfg.Path)
	} else {
		cat, err = catalog.New(catalog.DefaultProducts())
	}
	if err != nil {
		return nil, err
	}

	engine := service.NewDerivationEngine(cat)
	manager := service.NewFormManager(sessionCfg.TTL)

	var archiver service.OrderArchiver
	if dbComponents != nil && dbComponents.Archiver != nil {
		archiver = dbComponents.Archiver
	}

	workflow := service.NewSubmissionWorkflow(
		cat,
		engine,
		clients.Sheet,
		clients.TextGen,
		i18n.GetTranslator(),
		archiver,
	)

	forms := service.NewOrderFormService(manager, engine, workflow, cat)

	return &ServiceComponents{
		Catalog: cat,
		Manager: manager,
		Forms:   forms,
	}, nil
}

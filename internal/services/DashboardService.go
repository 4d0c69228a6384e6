package services

import (
	"fmt"
	"sync"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/providers"

	"github.com/gookit/validate"
	"go.uber.org/atomic"
)

type Persister interface {
	Save(doc *models.Document) error
}

type DashboardServiceInterface interface {
	Load(doc *models.Document)
	Snapshot() *models.Document
	Version() uint64
	Counts() map[string]int
	Persist() error

	CreateService(req *models.CreateServiceRequest) (*models.Service, error)
	UpdateService(id string, patch *models.ServicePatch) (*models.Service, error)
	DeleteService(id string) error

	CreateLink(req *models.CreateLinkRequest) (*models.Link, error)
	UpdateLink(id string, patch *models.LinkPatch) (*models.Link, error)
	DeleteLink(id string) error

	CreateWolTask(req *models.CreateWolRequest) (*models.WolTask, error)
	UpdateWolTask(id string, patch *models.WolPatch) (*models.WolTask, error)
	DeleteWolTask(id string) error

	Reorder(collection string, order []string) error

	Services() []models.Service
	ApplyProbe(probed models.Service, status string, checkedAt time.Time) bool
	GetWolTask(id string) (models.WolTask, error)
	SetWolResult(id string, ranAt time.Time, result string) error
}

// DashboardService owns the in-memory document. Every mutation runs under the
// write lock and is written through to the persister before the lock is released.
type DashboardService struct {
	mu        sync.RWMutex
	doc       *models.Document
	version   *atomic.Uint64
	persister Persister
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewDashboardService(persister Persister, logger providers.Logger, metrics providers.MetricsProviderInterface) DashboardServiceInterface {
	return &DashboardService{
		doc:       models.NewDocument(),
		version:   atomic.NewUint64(0),
		persister: persister,
		logger:    logger,
		metrics:   metrics,
	}
}

func validationError(req interface{}) error {
	v := validate.Struct(req)
	if v.Validate() {
		return nil
	}
	return &ValidationError{Message: v.Errors.One()}
}

// touch must be called with mu held.
func (ds *DashboardService) touch() {
	ds.version.Inc()
	ds.metrics.SetRecordsTotal(models.CollectionServices, len(ds.doc.Services))
	ds.metrics.SetRecordsTotal(models.CollectionLinks, len(ds.doc.Links))
	ds.metrics.SetRecordsTotal(models.CollectionWol, len(ds.doc.Wol))
}

// commit must be called with mu held. A failed write is logged; the in-memory
// document stays authoritative and the next mutation retries the write.
func (ds *DashboardService) commit() {
	ds.touch()
	if err := ds.persister.Save(ds.doc); err != nil {
		ds.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
	}
}

func (ds *DashboardService) Load(doc *models.Document) {
	if doc == nil {
		doc = models.NewDocument()
	}
	doc.Normalize()

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.doc = doc
	ds.touch()
}

func (ds *DashboardService) Snapshot() *models.Document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.doc.Clone()
}

// Version changes on every mutation, including probe results.
func (ds *DashboardService) Version() uint64 {
	return ds.version.Load()
}

func (ds *DashboardService) Counts() map[string]int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return map[string]int{
		models.CollectionServices: len(ds.doc.Services),
		models.CollectionLinks:    len(ds.doc.Links),
		models.CollectionWol:      len(ds.doc.Wol),
	}
}

func (ds *DashboardService) Persist() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.persister.Save(ds.doc)
}

func serviceID(s *models.Service) string { return s.ID }
func linkID(l *models.Link) string       { return l.ID }
func wolID(w *models.WolTask) string     { return w.ID }

func (ds *DashboardService) CreateService(req *models.CreateServiceRequest) (*models.Service, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	svc := &models.Service{
		ID:         models.NewID(models.PrefixService),
		Name:       req.Name,
		OpenURL:    req.OpenURL,
		CheckURL:   req.CheckURL,
		Method:     models.NormalizeMethod(req.Method),
		Notes:      req.Notes,
		LastStatus: models.StatusUnknown,
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.doc.Services = append(ds.doc.Services, svc)
	ds.commit()
	return svc.Clone(), nil
}

func (ds *DashboardService) UpdateService(id string, patch *models.ServicePatch) (*models.Service, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := indexOf(ds.doc.Services, id, serviceID)
	if i < 0 {
		return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	svc := ds.doc.Services[i]
	patch.Apply(svc)
	ds.commit()
	return svc.Clone(), nil
}

func (ds *DashboardService) DeleteService(id string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if i := indexOf(ds.doc.Services, id, serviceID); i >= 0 {
		ds.doc.Services = append(ds.doc.Services[:i], ds.doc.Services[i+1:]...)
	}
	ds.commit()
	return nil
}

func (ds *DashboardService) CreateLink(req *models.CreateLinkRequest) (*models.Link, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	link := &models.Link{
		ID:    models.NewID(models.PrefixLink),
		Title: req.Title,
		URL:   req.URL,
		Icon:  req.Icon,
		Notes: req.Notes,
	}
	if link.Icon == "" {
		link.Icon = models.DefaultLinkIcon
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.doc.Links = append(ds.doc.Links, link)
	ds.commit()
	return link.Clone(), nil
}

func (ds *DashboardService) UpdateLink(id string, patch *models.LinkPatch) (*models.Link, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := indexOf(ds.doc.Links, id, linkID)
	if i < 0 {
		return nil, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}
	link := ds.doc.Links[i]
	patch.Apply(link)
	ds.commit()
	return link.Clone(), nil
}

func (ds *DashboardService) DeleteLink(id string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if i := indexOf(ds.doc.Links, id, linkID); i >= 0 {
		ds.doc.Links = append(ds.doc.Links[:i], ds.doc.Links[i+1:]...)
	}
	ds.commit()
	return nil
}

func (ds *DashboardService) CreateWolTask(req *models.CreateWolRequest) (*models.WolTask, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	task := &models.WolTask{
		ID:       models.NewID(models.PrefixWol),
		Name:     req.Name,
		Host:     req.Host,
		User:     req.User,
		Pass:     req.Pass,
		ScriptID: req.ScriptID,
		Notes:    req.Notes,
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.doc.Wol = append(ds.doc.Wol, task)
	ds.commit()
	return task.Clone(), nil
}

func (ds *DashboardService) UpdateWolTask(id string, patch *models.WolPatch) (*models.WolTask, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := indexOf(ds.doc.Wol, id, wolID)
	if i < 0 {
		return nil, fmt.Errorf("wol task %s: %w", id, ErrNotFound)
	}
	task := ds.doc.Wol[i]
	patch.Apply(task)
	ds.commit()
	return task.Clone(), nil
}

func (ds *DashboardService) DeleteWolTask(id string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if i := indexOf(ds.doc.Wol, id, wolID); i >= 0 {
		ds.doc.Wol = append(ds.doc.Wol[:i], ds.doc.Wol[i+1:]...)
	}
	ds.commit()
	return nil
}

func (ds *DashboardService) Reorder(collection string, order []string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	switch collection {
	case models.CollectionServices:
		ds.doc.Services = reorder(ds.doc.Services, order, serviceID)
	case models.CollectionLinks:
		ds.doc.Links = reorder(ds.doc.Links, order, linkID)
	case models.CollectionWol:
		ds.doc.Wol = reorder(ds.doc.Wol, order, wolID)
	default:
		return fmt.Errorf("%q: %w", collection, ErrUnknownCollection)
	}
	ds.commit()
	return nil
}

// Services returns value copies for the prober to work on outside the lock.
func (ds *DashboardService) Services() []models.Service {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	out := make([]models.Service, 0, len(ds.doc.Services))
	for _, s := range ds.doc.Services {
		out = append(out, *s.Clone())
	}
	return out
}

// ApplyProbe records a probe result unless the service was deleted or its
// probe target changed while the probe was running. It does not persist.
func (ds *DashboardService) ApplyProbe(probed models.Service, status string, checkedAt time.Time) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := indexOf(ds.doc.Services, probed.ID, serviceID)
	if i < 0 {
		return false
	}
	svc := ds.doc.Services[i]
	if svc.CheckURL != probed.CheckURL || svc.Method != probed.Method {
		return false
	}
	svc.LastStatus = status
	svc.LastChecked = &checkedAt
	ds.touch()
	return true
}

func (ds *DashboardService) GetWolTask(id string) (models.WolTask, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	i := indexOf(ds.doc.Wol, id, wolID)
	if i < 0 {
		return models.WolTask{}, fmt.Errorf("wol task %s: %w", id, ErrNotFound)
	}
	return *ds.doc.Wol[i].Clone(), nil
}

func (ds *DashboardService) SetWolResult(id string, ranAt time.Time, result string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	i := indexOf(ds.doc.Wol, id, wolID)
	if i < 0 {
		return fmt.Errorf("wol task %s: %w", id, ErrNotFound)
	}
	task := ds.doc.Wol[i]
	task.LastRun = &ranAt
	task.LastResult = result
	ds.commit()
	return nil
}

package models

import "github.com/google/uuid"

const (
	CollectionServices = "services"
	CollectionLinks    = "links"
	CollectionWol      = "wol"
)

const (
	PrefixService = "svc"
	PrefixLink    = "link"
	PrefixWol     = "wol"
)

// Document is the whole persisted state. Slice order is the display order.
type Document struct {
	Services []*Service `json:"services"`
	Links    []*Link    `json:"links"`
	Wol      []*WolTask `json:"wol"`
}

func NewDocument() *Document {
	return &Document{
		Services: make([]*Service, 0),
		Links:    make([]*Link, 0),
		Wol:      make([]*WolTask, 0),
	}
}

func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Normalize fills in fields that older or hand-edited files may lack.
func (d *Document) Normalize() {
	if d.Services == nil {
		d.Services = make([]*Service, 0)
	}
	if d.Links == nil {
		d.Links = make([]*Link, 0)
	}
	if d.Wol == nil {
		d.Wol = make([]*WolTask, 0)
	}

	services := d.Services[:0]
	for _, s := range d.Services {
		if s == nil {
			continue
		}
		if s.ID == "" {
			s.ID = NewID(PrefixService)
		}
		s.Method = NormalizeMethod(s.Method)
		s.LastStatus = normalizeStatus(s.LastStatus)
		services = append(services, s)
	}
	d.Services = services

	links := d.Links[:0]
	for _, l := range d.Links {
		if l == nil {
			continue
		}
		if l.ID == "" {
			l.ID = NewID(PrefixLink)
		}
		if l.Icon == "" {
			l.Icon = DefaultLinkIcon
		}
		links = append(links, l)
	}
	d.Links = links

	tasks := d.Wol[:0]
	for _, w := range d.Wol {
		if w == nil {
			continue
		}
		if w.ID == "" {
			w.ID = NewID(PrefixWol)
		}
		tasks = append(tasks, w)
	}
	d.Wol = tasks
}

// Clone returns a deep copy safe to hand out of the owning service.
func (d *Document) Clone() *Document {
	c := &Document{
		Services: make([]*Service, 0, len(d.Services)),
		Links:    make([]*Link, 0, len(d.Links)),
		Wol:      make([]*WolTask, 0, len(d.Wol)),
	}
	for _, s := range d.Services {
		c.Services = append(c.Services, s.Clone())
	}
	for _, l := range d.Links {
		c.Links = append(c.Links, l.Clone())
	}
	for _, w := range d.Wol {
		c.Wol = append(c.Wol, w.Clone())
	}
	return c
}

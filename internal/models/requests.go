package models

type CreateServiceRequest struct {
	Name     string `json:"name" validate:"required"`
	OpenURL  string `json:"openUrl" validate:"required"`
	CheckURL string `json:"checkUrl" validate:"required"`
	Method   string `json:"method"`
	Notes    string `json:"notes"`
}

type CreateLinkRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
	Icon  string `json:"icon"`
	Notes string `json:"notes"`
}

type CreateWolRequest struct {
	Name     string `json:"name" validate:"required"`
	Host     string `json:"host" validate:"required"`
	User     string `json:"user" validate:"required"`
	Pass     string `json:"pass" validate:"required"`
	ScriptID string `json:"scriptId" validate:"required"`
	Notes    string `json:"notes"`
}

// Patch types carry pointers so that absent JSON fields stay nil and are left untouched.

type ServicePatch struct {
	Name     *string `json:"name"`
	OpenURL  *string `json:"openUrl"`
	CheckURL *string `json:"checkUrl"`
	Method   *string `json:"method"`
	Notes    *string `json:"notes"`
}

type LinkPatch struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
	Icon  *string `json:"icon"`
	Notes *string `json:"notes"`
}

type WolPatch struct {
	Name     *string `json:"name"`
	Host     *string `json:"host"`
	User     *string `json:"user"`
	Pass     *string `json:"pass"`
	ScriptID *string `json:"scriptId"`
	Notes    *string `json:"notes"`
}

type ReorderRequest struct {
	Order []string `json:"order"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (p *ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.OpenURL != nil {
		s.OpenURL = *p.OpenURL
	}
	if p.CheckURL != nil {
		s.CheckURL = *p.CheckURL
	}
	if p.Method != nil {
		s.Method = NormalizeMethod(*p.Method)
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}

func (p *LinkPatch) Apply(l *Link) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Icon != nil {
		l.Icon = *p.Icon
		if l.Icon == "" {
			l.Icon = DefaultLinkIcon
		}
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}

func (p *WolPatch) Apply(w *WolTask) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Host != nil {
		w.Host = *p.Host
	}
	if p.User != nil {
		w.User = *p.User
	}
	if p.Pass != nil {
		w.Pass = *p.Pass
	}
	if p.ScriptID != nil {
		w.ScriptID = *p.ScriptID
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
}

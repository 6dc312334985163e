package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// JobTemplate is a reusable job configuration: items and settings, never results.
type JobTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Items       []ItemSpec  `json:"items"`
	Settings    JobSettings `json:"settings"`
}

// NewJobTemplate creates a template from the given job data.
func NewJobTemplate(name, description string, items []ItemSpec, settings JobSettings) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       copyItems(items),
		Settings:    settings,
	}
}

// ToJob creates a new Job from this template. Items get fresh IDs.
func (t JobTemplate) ToJob(jobName string) Job {
	items := make([]ItemSpec, len(t.Items))
	for i, s := range t.Items {
		items[i] = NewItemSpec(s.Label, s.Width, s.Height, s.Quantity)
	}

	job := NewJob()
	job.Name = jobName
	job.Items = items
	job.Settings = t.Settings
	return job
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []JobTemplate{},
	}
}

// Add adds a template, replacing any existing template with the same name.
func (ts *TemplateStore) Add(t JobTemplate) {
	for i := range ts.Templates {
		if ts.Templates[i].Name == t.Name {
			t.CreatedAt = ts.Templates[i].CreatedAt
			ts.Templates[i] = t
			return
		}
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyItems(items []ItemSpec) []ItemSpec {
	if items == nil {
		return []ItemSpec{}
	}
	return slices.Clone(items)
}

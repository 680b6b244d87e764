package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate represents a reusable room configuration that captures
// walls, obstacles, section requests, and settings but not a computed plan.
type ProjectTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Room        Room           `json:"room"`
	Obstacles   []Obstacle     `json:"obstacles"`
	Sections    []SectionSpec  `json:"sections"`
	Settings    LayoutSettings `json:"settings"`
}

// NewProjectTemplate creates a new template from the given project.
// It copies the room, obstacles, sections, and settings but intentionally
// excludes the plan.
func NewProjectTemplate(name, description string, p Project) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Room:        copyRoom(p.Room),
		Obstacles:   copyObstacles(p.Obstacles),
		Sections:    copySections(p.Sections),
		Settings:    p.Settings,
	}
}

// ToProject creates a new Project from this template.
// Obstacles and sections get fresh IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	obstacles := copyObstacles(t.Obstacles)
	for i := range obstacles {
		obstacles[i].ID = uuid.New().String()[:8]
	}

	sections := copySections(t.Sections)
	for i := range sections {
		sections[i].ID = uuid.New().String()[:8]
	}

	return Project{
		Name:      projectName,
		Room:      copyRoom(t.Room),
		Obstacles: obstacles,
		Sections:  sections,
		Settings:  t.Settings,
	}
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
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
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for pickers.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyRoom clones a room so template edits never reach the source walls.
func copyRoom(r Room) Room {
	cp := r
	cp.Walls = make([]WallSegment, len(r.Walls))
	copy(cp.Walls, r.Walls)
	return cp
}

// copyObstacles creates a deep copy of an obstacle slice.
func copyObstacles(obstacles []Obstacle) []Obstacle {
	cp := make([]Obstacle, len(obstacles))
	copy(cp, obstacles)
	for i, o := range obstacles {
		if o.ClearanceOverride != nil {
			override := *o.ClearanceOverride
			cp[i].ClearanceOverride = &override
		}
	}
	return cp
}

// copySections creates a deep copy of a section spec slice.
func copySections(sections []SectionSpec) []SectionSpec {
	cp := make([]SectionSpec, len(sections))
	copy(cp, sections)
	for i, s := range sections {
		if s.Rows != nil {
			cp[i].Rows = make([]RowSpec, len(s.Rows))
			copy(cp[i].Rows, s.Rows)
		}
	}
	return cp
}

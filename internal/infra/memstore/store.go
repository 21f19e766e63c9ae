package memstore

import (
	"context"
	"sync"
	"time"

	"aaai-platform/internal/domain/catalog"
)

// Store is the seeded in-memory catalog repository. Catalog writes are
// administrative and last-writer-wins; the mutex exists so concurrent reads
// during a write stay well-defined, not to serialize business operations.
type Store struct {
	mu sync.RWMutex

	courses     map[string]catalog.Course
	courseOrder []string

	projects     map[string]catalog.Project
	projectOrder []string

	codeLabs     map[string]catalog.CodeLab
	codeLabOrder []string

	documentation map[string]catalog.Documentation
	docOrder      []string

	progress []catalog.UserProgress
}

func New() *Store {
	s := &Store{
		courses:       make(map[string]catalog.Course),
		projects:      make(map[string]catalog.Project),
		codeLabs:      make(map[string]catalog.CodeLab),
		documentation: make(map[string]catalog.Documentation),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	for _, c := range seedCourses {
		s.putCourse(c)
	}
	for _, p := range seedProjects {
		s.putProject(p)
	}
	for _, l := range seedCodeLabs {
		s.putCodeLab(l)
	}
	now := time.Now()
	for _, d := range seedDocumentation {
		d.LastUpdated = now
		s.putDocumentation(d)
	}
}

// Courses

func (s *Store) GetAllCourses(_ context.Context) ([]catalog.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		out = append(out, s.courses[id])
	}
	return out, nil
}

func (s *Store) GetCourse(_ context.Context, id string) (*catalog.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateCourse(_ context.Context, course catalog.Course) (*catalog.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCourse(course)
	return &course, nil
}

func (s *Store) putCourse(course catalog.Course) {
	if _, exists := s.courses[course.ID]; !exists {
		s.courseOrder = append(s.courseOrder, course.ID)
	}
	s.courses[course.ID] = course
}

// Projects

func (s *Store) GetAllProjects(_ context.Context) ([]catalog.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		out = append(out, s.projects[id])
	}
	return out, nil
}

func (s *Store) GetProjectsByCategory(_ context.Context, category string) ([]catalog.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Project
	for _, id := range s.projectOrder {
		if p := s.projects[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetProject(_ context.Context, id string) (*catalog.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) CreateProject(_ context.Context, project catalog.Project) (*catalog.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putProject(project)
	return &project, nil
}

func (s *Store) putProject(project catalog.Project) {
	if _, exists := s.projects[project.ID]; !exists {
		s.projectOrder = append(s.projectOrder, project.ID)
	}
	s.projects[project.ID] = project
}

// Code labs

func (s *Store) GetAllCodeLabs(_ context.Context) ([]catalog.CodeLab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.CodeLab, 0, len(s.codeLabOrder))
	for _, id := range s.codeLabOrder {
		out = append(out, s.codeLabs[id])
	}
	return out, nil
}

func (s *Store) GetCodeLabsByDifficulty(_ context.Context, difficulty string) ([]catalog.CodeLab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.CodeLab
	for _, id := range s.codeLabOrder {
		if l := s.codeLabs[id]; l.Difficulty == difficulty {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) GetCodeLab(_ context.Context, id string) (*catalog.CodeLab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.codeLabs[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *Store) CreateCodeLab(_ context.Context, lab catalog.CodeLab) (*catalog.CodeLab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCodeLab(lab)
	return &lab, nil
}

func (s *Store) putCodeLab(lab catalog.CodeLab) {
	if _, exists := s.codeLabs[lab.ID]; !exists {
		s.codeLabOrder = append(s.codeLabOrder, lab.ID)
	}
	s.codeLabs[lab.ID] = lab
}

// Documentation

func (s *Store) GetAllDocumentation(_ context.Context) ([]catalog.Documentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Documentation, 0, len(s.docOrder))
	for _, id := range s.docOrder {
		out = append(out, s.documentation[id])
	}
	return out, nil
}

func (s *Store) GetDocumentationByCategory(_ context.Context, category string) ([]catalog.Documentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Documentation
	for _, id := range s.docOrder {
		if d := s.documentation[id]; d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) GetDocumentation(_ context.Context, id string) (*catalog.Documentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documentation[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *Store) SearchDocumentation(_ context.Context, query string) ([]catalog.Documentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Documentation
	for _, id := range s.docOrder {
		if d := s.documentation[id]; d.MatchesQuery(query) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) CreateDocumentation(_ context.Context, doc catalog.Documentation) (*catalog.Documentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putDocumentation(doc)
	return &doc, nil
}

func (s *Store) putDocumentation(doc catalog.Documentation) {
	if _, exists := s.documentation[doc.ID]; !exists {
		s.docOrder = append(s.docOrder, doc.ID)
	}
	s.documentation[doc.ID] = doc
}

// User progress

func (s *Store) GetUserProgress(_ context.Context, userID string) ([]catalog.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.UserProgress
	for _, p := range s.progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetUserCourseProgress(_ context.Context, userID, courseID string) ([]catalog.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.UserProgress
	for _, p := range s.progress {
		if p.UserID == userID && p.CourseID == courseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) UpsertUserProgress(_ context.Context, entry catalog.UserProgress) (*catalog.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, entry)
	return &entry, nil
}

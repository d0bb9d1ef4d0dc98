// Package catalog loads the static course and teacher datasets served by the
// read endpoints. The catalog is read once at boot and never mutated.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/s2s-school/s2s-api/internal/models"
)

// Catalog holds the validated, ordered course and teacher collections.
type Catalog struct {
	courses  []models.Course
	teachers []models.Teacher

	courseByID  map[uuid.UUID]int
	teacherByID map[uuid.UUID]int
}

// Load reads both catalog files, validates every record and builds the
// catalog. A single invalid record fails the whole load: the server must not
// start with a partial catalog.
func Load(coursesPath, teachersPath string, validate *validator.Validate) (*Catalog, error) {
	if validate == nil {
		validate = validator.New()
	}

	var courses []models.Course
	if err := readJSON(coursesPath, &courses); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	for i, course := range courses {
		if err := validate.Struct(course); err != nil {
			return nil, fmt.Errorf("load courses: record %d (%s): %w", i, course.ID, err)
		}
	}

	var teachers []models.Teacher
	if err := readJSON(teachersPath, &teachers); err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}
	for i, teacher := range teachers {
		if err := validate.Struct(teacher); err != nil {
			return nil, fmt.Errorf("load teachers: record %d (%s): %w", i, teacher.ID, err)
		}
	}

	return New(courses, teachers)
}

// New builds a catalog from already-validated records, indexing them by id.
func New(courses []models.Course, teachers []models.Teacher) (*Catalog, error) {
	cat := &Catalog{
		courses:     courses,
		teachers:    teachers,
		courseByID:  make(map[uuid.UUID]int, len(courses)),
		teacherByID: make(map[uuid.UUID]int, len(teachers)),
	}
	for i, course := range courses {
		if _, dup := cat.courseByID[course.ID]; dup {
			return nil, fmt.Errorf("load courses: duplicate id %s", course.ID)
		}
		cat.courseByID[course.ID] = i
	}
	for i, teacher := range teachers {
		if _, dup := cat.teacherByID[teacher.ID]; dup {
			return nil, fmt.Errorf("load teachers: duplicate id %s", teacher.ID)
		}
		cat.teacherByID[teacher.ID] = i
	}

	return cat, nil
}

// Courses returns all courses in file order.
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Course returns the course with the given id.
func (c *Catalog) Course(id uuid.UUID) (*models.Course, bool) {
	i, ok := c.courseByID[id]
	if !ok {
		return nil, false
	}
	return &c.courses[i], true
}

// Teachers returns all teachers in file order.
func (c *Catalog) Teachers() []models.Teacher {
	return c.teachers
}

// Teacher returns the teacher with the given id.
func (c *Catalog) Teacher(id uuid.UUID) (*models.Teacher, bool) {
	i, ok := c.teacherByID[id]
	if !ok {
		return nil, false
	}
	return &c.teachers[i], true
}

func readJSON(path string, dst interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

package catalog

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadPreservesOrderAndFields(t *testing.T) {
	cat, err := Load(testdata("courses.json"), testdata("teachers.json"), nil)
	require.NoError(t, err)

	courses := cat.Courses()
	require.Len(t, courses, 3)
	assert.Equal(t, "Подготовка к ЕГЭ по математике", courses[0].Title)
	assert.Equal(t, "Олимпиадная математика", courses[1].Title)
	assert.Equal(t, "Олимпиадная физика", courses[2].Title)

	first := courses[0]
	assert.Equal(t, "Математика", first.Subject)
	assert.Equal(t, "ЕГЭ", first.Category)
	assert.Equal(t, "9 месяцев", first.Duration)
	assert.Equal(t, 72, first.Lessons)
	assert.Equal(t, "10-11", first.Grades)
	assert.Equal(t, []string{"2 занятия в неделю", "Личный куратор"}, first.Features)
	assert.Equal(t, 4990.0, first.OriginalPrice)
	assert.Equal(t, 3990.0, first.CurrentPrice)
	assert.True(t, first.IsPopular)

	teachers := cat.Teachers()
	require.Len(t, teachers, 2)
	assert.Equal(t, "Анна Сергеевна Петрова", teachers[0].Name)
	require.NotNil(t, teachers[0].ImageURL)
	assert.Equal(t, "/images/teachers/petrova.jpg", *teachers[0].ImageURL)
	assert.Nil(t, teachers[1].ImageURL)
	require.Len(t, teachers[1].Achievements, 1)
	assert.Equal(t, "🏆", teachers[1].Achievements[0].Icon)
}

func TestLoadLookupByID(t *testing.T) {
	cat, err := Load(testdata("courses.json"), testdata("teachers.json"), nil)
	require.NoError(t, err)

	course, ok := cat.Course(uuid.MustParse("2f1e0d9c-8b7a-4655-9433-221100ffeedd"))
	require.True(t, ok)
	assert.Equal(t, "Олимпиадная математика", course.Title)

	_, ok = cat.Course(uuid.Nil)
	assert.False(t, ok)

	teacher, ok := cat.Teacher(uuid.MustParse("99ff88ee-77dd-4cc6-9b5a-a4998877665f"))
	require.True(t, ok)
	assert.Equal(t, "Физика", teacher.Subject)
}

func TestLoadFailsFastOnInvalidRecord(t *testing.T) {
	_, err := Load(testdata("courses_invalid.json"), testdata("teachers.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load courses")
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(testdata("does_not_exist.json"), testdata("teachers.json"), nil)
	require.Error(t, err)
}

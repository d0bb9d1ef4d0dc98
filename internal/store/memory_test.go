package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2s-school/s2s-api/internal/catalog"
	"github.com/s2s-school/s2s-api/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	courses := []models.Course{
		{
			ID:       uuid.MustParse("7e3f9d0a-4b1c-4a2e-9f6d-1a2b3c4d5e6f"),
			Title:    "Подготовка к ЕГЭ по математике",
			Subject:  "Математика",
			Category: "ЕГЭ",
		},
		{
			ID:       uuid.MustParse("2f1e0d9c-8b7a-4655-9433-221100ffeedd"),
			Title:    "Олимпиадная математика",
			Subject:  "Математика",
			Category: "Олимпиада",
		},
		{
			ID:       uuid.MustParse("5d4c3b2a-1908-4776-b554-33221100aabb"),
			Title:    "Олимпиадная физика",
			Subject:  "Физика",
			Category: "Олимпиада",
		},
	}
	teachers := []models.Teacher{
		{
			ID:      uuid.MustParse("11aa22bb-33cc-44dd-85ee-66ff77889900"),
			Name:    "Анна Сергеевна Петрова",
			Subject: "Математика",
		},
	}
	cat, err := catalog.New(courses, teachers)
	require.NoError(t, err)
	return cat
}

func TestCreateUserAssignsUniqueIDs(t *testing.T) {
	s := NewMemory(testCatalog(t))

	seen := map[uuid.UUID]bool{}
	for _, name := range []string{"ivan", "maria", "oleg"} {
		user, err := s.CreateUser(models.InsertUser{Username: name})
		require.NoError(t, err)
		assert.False(t, seen[user.ID])
		seen[user.ID] = true
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := NewMemory(testCatalog(t))

	_, err := s.CreateUser(models.InsertUser{Username: "ivan"})
	require.NoError(t, err)

	_, err = s.CreateUser(models.InsertUser{Username: "ivan"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	assert.Len(t, s.Users(), 1)
}

func TestCreateUserDuplicateUsernameConcurrent(t *testing.T) {
	s := NewMemory(testCatalog(t))

	const attempts = 32
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateUser(models.InsertUser{Username: "ivan"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrUsernameTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, s.Users(), 1)
}

func TestUserLookupMalformedIDBehavesLikeAbsent(t *testing.T) {
	s := NewMemory(testCatalog(t))

	_, ok := s.User("not-a-valid-id-format")
	assert.False(t, ok)

	_, ok = s.User("00000000-0000-0000-0000-000000000000")
	assert.False(t, ok)
}

func TestUserByUsernameFirstMatchInsertionOrder(t *testing.T) {
	s := NewMemory(testCatalog(t))

	created, err := s.CreateUser(models.InsertUser{Username: "maria"})
	require.NoError(t, err)

	found, ok := s.UserByUsername("maria")
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = s.UserByUsername("nobody")
	assert.False(t, ok)
}

func TestCourseLookups(t *testing.T) {
	s := NewMemory(testCatalog(t))

	courses := s.Courses()
	require.Len(t, courses, 3)

	course, ok := s.Course("2f1e0d9c-8b7a-4655-9433-221100ffeedd")
	require.True(t, ok)
	assert.Equal(t, "Олимпиадная математика", course.Title)

	_, ok = s.Course("definitely-not-a-uuid")
	assert.False(t, ok)

	_, ok = s.Course(uuid.NewString())
	assert.False(t, ok)
}

func TestCoursesByCategoryExactMatch(t *testing.T) {
	s := NewMemory(testCatalog(t))

	olympiad := s.CoursesByCategory("Олимпиада")
	require.Len(t, olympiad, 2)
	for _, course := range olympiad {
		assert.Equal(t, "Олимпиада", course.Category)
	}

	// Case-sensitive: lowered query must not match.
	assert.Empty(t, s.CoursesByCategory("олимпиада"))
	assert.Empty(t, s.CoursesByCategory("Химия"))
}

func TestCoursesBySubjectExactMatch(t *testing.T) {
	s := NewMemory(testCatalog(t))

	math := s.CoursesBySubject("Математика")
	require.Len(t, math, 2)

	physics := s.CoursesBySubject("Физика")
	require.Len(t, physics, 1)
	assert.Equal(t, "Олимпиадная физика", physics[0].Title)
}

func TestTeacherLookups(t *testing.T) {
	s := NewMemory(testCatalog(t))

	require.Len(t, s.Teachers(), 1)

	teacher, ok := s.Teacher("11aa22bb-33cc-44dd-85ee-66ff77889900")
	require.True(t, ok)
	assert.Equal(t, "Анна Сергеевна Петрова", teacher.Name)

	_, ok = s.Teacher("bogus")
	assert.False(t, ok)
}

func TestCreateApplicationAssignsIDAndUTCTimestamp(t *testing.T) {
	s := NewMemory(testCatalog(t))

	userID := uuid.New()
	courseID := uuid.MustParse("7e3f9d0a-4b1c-4a2e-9f6d-1a2b3c4d5e6f")

	before := time.Now().UTC()
	app := s.CreateApplication(userID, courseID)
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, app.ID)
	assert.Equal(t, userID, app.UserID)
	assert.Equal(t, courseID, app.CourseID)
	assert.Equal(t, time.UTC, app.CreatedAt.Location())
	assert.False(t, app.CreatedAt.Before(before))
	assert.False(t, app.CreatedAt.After(after))

	found, ok := s.Application(app.ID.String())
	require.True(t, ok)
	assert.Equal(t, app.ID, found.ID)
}

func TestApplicationsSnapshotInsertionOrder(t *testing.T) {
	s := NewMemory(testCatalog(t))

	first := s.CreateApplication(uuid.New(), uuid.New())
	second := s.CreateApplication(uuid.New(), uuid.New())

	apps := s.Applications()
	require.Len(t, apps, 2)
	assert.Equal(t, first.ID, apps[0].ID)
	assert.Equal(t, second.ID, apps[1].ID)
}

func TestCreateContactFormCapturesFields(t *testing.T) {
	s := NewMemory(testCatalog(t))
	ctx := context.Background()

	form, err := s.CreateContactForm(ctx, models.InsertContactForm{
		FullName:      "Иван Иванов",
		Phone:         "+79001234567",
		Email:         "ivan@example.com",
		AgreedToTerms: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, form.ID)
	assert.Equal(t, "Иван Иванов", form.FullName)
	assert.Equal(t, "+79001234567", form.Phone)
	assert.Equal(t, "ivan@example.com", form.Email)
	assert.True(t, form.AgreedToTerms)

	forms, err := s.ContactForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, form.ID, forms[0].ID)
}
